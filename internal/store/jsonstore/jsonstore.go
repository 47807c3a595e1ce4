package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// JSON-backed key/value storage. Single file holding an object of string
// values, human-readable, portable. No locking; one local writer.

const DefaultFileName = "tada.json"

var errCorrupt = errors.New("corrupt store file")

type Store struct {
	path string
	log  *slog.Logger
}

// New returns a store backed by path. An empty path means DefaultFileName
// in the working directory.
func New(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path, log: log}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set writes one key. A file that no longer parses is copied to
// <path>.bak and replaced.
func (s *Store) Set(_ context.Context, key, value string) error {
	m, err := s.load()
	if errors.Is(err, errCorrupt) {
		bak := s.path + ".bak"
		s.log.Warn("store file is corrupt, replacing it", "path", s.path, "backup", bak, "err", err)
		if err := os.Rename(s.path, bak); err != nil {
			return fmt.Errorf("backup corrupt file: %w", err)
		}
		m, err = map[string]string{}, nil
	}
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

func (s *Store) Close() error { return nil }

func (s *Store) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	m := map[string]string{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %w", errCorrupt, err)
	}
	return m, nil
}

func (s *Store) save(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	// write next to the target, then rename over it
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tada-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
