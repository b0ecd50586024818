package segment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func ids(l List) []int {
	out := make([]int, len(l))
	for i, g := range l {
		out[i] = g.GroupID
	}
	return out
}

func TestNormalize(t *testing.T) {
	t.Run("should create one group per raw segment", func(t *testing.T) {
		raws := []Raw{
			{Segment: Segment{Start: 0, End: 1, Text: "A"}},
			{Segment: Segment{Start: 1, End: 2, Text: "B"}},
			{Segment: Segment{Start: 2, End: 3, Text: "C"}},
		}

		l := Normalize(nil, raws)

		require.Len(t, l, 3)
		assert.Equal(t, []int{0, 1, 2}, ids(l))
		for i, g := range l {
			assert.Equal(t, i, g.OriginalIndex)
			assert.Equal(t, 0, g.PositionInGroup)
			assert.Equal(t, 1, g.GroupSize)
		}
		assert.NoError(t, Check(l))
	})

	t.Run("should sort the combined set by start time", func(t *testing.T) {
		prev := Normalize(nil, []Raw{
			{Segment: Segment{Start: 0, End: 1, Text: "A"}},
			{Segment: Segment{Start: 4, End: 5, Text: "E"}},
		})

		l := Normalize(prev, []Raw{
			{Segment: Segment{Start: 2, End: 3, Text: "C"}},
		})

		require.Len(t, l, 3)
		assert.Equal(t, "A", l[0].Text)
		assert.Equal(t, "C", l[1].Text)
		assert.Equal(t, "E", l[2].Text)
		assert.Equal(t, 1, l[1].OriginalIndex)
		assert.Equal(t, 2, l[2].OriginalIndex)
		assert.NoError(t, Check(l))
	})

	t.Run("should keep pre-merged groups from a re-import", func(t *testing.T) {
		raws := []Raw{
			{Segment: Segment{Start: 0, End: 1, Text: "A"}, GroupID: intp(0), GroupSize: intp(2)},
			{Segment: Segment{Start: 1, End: 2, Text: "B"}, GroupID: intp(0), PositionInGroup: intp(1), GroupSize: intp(2)},
			{Segment: Segment{Start: 2, End: 3, Text: "C"}, GroupID: intp(1), GroupSize: intp(1)},
		}

		l := Normalize(nil, raws)

		assert.Equal(t, []int{0, 0, 1}, ids(l))
		assert.Equal(t, 1, l[1].PositionInGroup)
		assert.Equal(t, 2, l[0].GroupSize)
		assert.Equal(t, 2, l[1].GroupSize)
		assert.Equal(t, 1, l[2].GroupSize)
		assert.NoError(t, Check(l))
	})

	t.Run("should ignore provisional group sizes", func(t *testing.T) {
		raws := []Raw{
			{Segment: Segment{Start: 0, End: 1, Text: "A"}, GroupID: intp(7), GroupSize: intp(9)},
			{Segment: Segment{Start: 1, End: 2, Text: "B"}, GroupID: intp(7), GroupSize: intp(9)},
		}

		l := Normalize(nil, raws)

		assert.Equal(t, []int{0, 0}, ids(l))
		assert.Equal(t, 2, l[0].GroupSize)
		assert.NoError(t, Check(l))
	})

	t.Run("should not join segments that lack a source group", func(t *testing.T) {
		raws := []Raw{
			{Segment: Segment{Start: 0, End: 1, Text: "A"}},
			{Segment: Segment{Start: 1, End: 2, Text: "B"}, GroupID: intp(0)},
		}

		l := Normalize(nil, raws)

		assert.Equal(t, []int{0, 1}, ids(l))
	})

	t.Run("should return an empty list for no input", func(t *testing.T) {
		l := Normalize(nil)
		assert.Empty(t, l)
		assert.NoError(t, Check(l))
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr string
	}{
		{name: "valid", data: `[{"start":0,"end":1.5,"text":"hi"}]`, wantLen: 1},
		{name: "with grouping", data: `[{"start":0,"end":1,"text":"a","groupId":0,"groupSize":1}]`, wantLen: 1},
		{name: "empty array", data: `[]`, wantLen: 0},
		{name: "not json", data: `hello`, wantErr: "invalid character"},
		{name: "object", data: `{"start":0}`, wantErr: "cannot unmarshal"},
		{name: "missing text", data: `[{"start":0,"end":1}]`, wantErr: "segment 0: missing text"},
		{name: "text as number", data: `[{"start":0,"end":1,"text":5}]`, wantErr: "segment 0"},
		{name: "start as string", data: `[{"start":"0","end":1,"text":"a"}]`, wantErr: "segment 0"},
		{name: "end before start", data: `[{"start":2,"end":1,"text":"a"}]`, wantErr: "end 1 before start 2"},
		{name: "null entry", data: `[null]`, wantErr: "missing start, end, text"},
		{name: "null document", data: `null`, wantErr: "not an array"},
		{name: "null with whitespace", data: " null\n", wantErr: "not an array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raws, err := Decode("input.json", []byte(tt.data))
			if tt.wantErr != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, "input.json", verr.Source)
				assert.Contains(t, verr.Reason, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, raws, tt.wantLen)
		})
	}
}

func TestImport(t *testing.T) {
	t.Run("should collect errors and still load valid sources", func(t *testing.T) {
		sources := []Source{
			{Name: "bad.json", Data: []byte("not json at all")},
			{Name: "good.json", Data: []byte(`[{"start":0,"end":1,"text":"A"},{"start":1,"end":2,"text":"B"}]`)},
		}

		l, errs := Import(nil, sources)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "bad.json")
		require.Len(t, l, 2)
		assert.Equal(t, "A", l[0].Text)
		assert.NoError(t, Check(l))
	})
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("should reject non json extensions", func(t *testing.T) {
		path := filepath.Join(dir, "cues.txt")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

		_, err := ReadSource(path)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "cues.txt", verr.Source)
		assert.Equal(t, "not json", verr.Reason)
	})

	t.Run("should read json files", func(t *testing.T) {
		path := filepath.Join(dir, "cues.JSON")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

		src, err := ReadSource(path)

		require.NoError(t, err)
		assert.Equal(t, "cues.JSON", src.Name)
		assert.Equal(t, "[]", string(src.Data))
	})

	t.Run("should report missing files", func(t *testing.T) {
		_, err := ReadSource(filepath.Join(dir, "absent.json"))
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestListHelpers(t *testing.T) {
	l := Normalize(nil, []Raw{
		{Segment: Segment{Start: 0, End: 1, Text: "A"}, GroupID: intp(0)},
		{Segment: Segment{Start: 1, End: 2, Text: "B"}, GroupID: intp(0)},
		{Segment: Segment{Start: 2, End: 3, Text: "C"}},
	})

	assert.Equal(t, 2, l.GroupCount())
	assert.Equal(t, []int{0, 1}, l.Members(0))
	assert.Equal(t, 2, l.IndexOf(2))
	assert.Equal(t, -1, l.IndexOf(9))

	c := l.Clone()
	c[0].Text = "changed"
	assert.Equal(t, "A", l[0].Text)
	assert.Nil(t, List(nil).Clone())
}
