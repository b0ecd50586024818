package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/mgpai22/aab/internal/logging"
	"github.com/mgpai22/aab/internal/segment"
)

// ErrLocked is returned when another process holds the project lock.
var ErrLocked = errors.New("project is locked by another process")

// Store keeps the working segment list in a JSON file. Snapshots are taken
// as authoritative; they are not revalidated on load.
type Store struct {
	path     string
	lockPath string
	lock     *flock.Flock
	logger   *logging.Logger
}

func Open(path string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	lockPath := path + ".lock"
	return &Store{
		path:     path,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		logger:   logger,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the project. A missing file is an empty project.
func (s *Store) Load() (segment.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return segment.List{}, nil
		}
		return nil, fmt.Errorf("read project: %w", err)
	}

	var l segment.List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", s.path, err)
	}
	if l == nil {
		l = segment.List{}
	}
	return l, nil
}

// Save writes l atomically through a temporary file in the same directory.
func (s *Store) Save(l segment.List) error {
	if l == nil {
		l = segment.List{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close project: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace project: %w", err)
	}

	s.logger.Debugw("saved project", "path", s.path, "segments", len(l))
	return nil
}

// Update runs fn on the current snapshot while holding the project lock and
// saves its result. Nothing is written when fn fails.
func (s *Store) Update(fn func(segment.List) (segment.List, error)) (segment.List, error) {
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", s.lockPath, ErrLocked)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warnw("failed to release project lock", "lock", s.lockPath, "error", err)
		}
	}()

	current, err := s.Load()
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	if err := s.Save(next); err != nil {
		return current, err
	}
	return next, nil
}
