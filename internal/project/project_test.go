package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgpai22/aab/internal/segment"
)

func sample() segment.List {
	return segment.Normalize(nil, []segment.Raw{
		{Segment: segment.Segment{Start: 0, End: 1, Text: "A"}},
		{Segment: segment.Segment{Start: 1, End: 2, Text: "B"}},
	})
}

func TestStoreLoadMissing(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "p.json"), nil)

	l, err := store.Load()

	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "p.json")
	store := Open(path, nil)
	want := sample()

	require.NoError(t, store.Save(want))
	got, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be cleaned up")
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Open(path, nil).Load()

	assert.ErrorContains(t, err, "parse project")
}

func TestStoreUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	store := Open(path, nil)
	require.NoError(t, store.Save(sample()))

	t.Run("should save the result of fn", func(t *testing.T) {
		next, err := store.Update(func(l segment.List) (segment.List, error) {
			out := l.Clone()
			out[0].Text = "changed"
			return out, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "changed", next[0].Text)
		stored, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "changed", stored[0].Text)
	})

	t.Run("should leave the file alone when fn fails", func(t *testing.T) {
		before, err := os.ReadFile(path)
		require.NoError(t, err)
		boom := errors.New("boom")

		_, err = store.Update(func(l segment.List) (segment.List, error) {
			return nil, boom
		})

		assert.ErrorIs(t, err, boom)
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("should fail fast when locked", func(t *testing.T) {
		other := flock.New(path + ".lock")
		ok, err := other.TryLock()
		require.NoError(t, err)
		require.True(t, ok)
		defer other.Unlock()

		_, err = store.Update(func(l segment.List) (segment.List, error) {
			return l, nil
		})

		assert.ErrorIs(t, err, ErrLocked)
	})
}
