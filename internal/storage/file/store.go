package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

const recordExt = ".json"

// Store keeps each record as <root>/<collection>/<id>.json.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) List(ctx context.Context, collection string) ([]string, error) {
	dir, err := s.collectionDir(collection)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), recordExt))
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *Store) Read(ctx context.Context, collection, id string) (core.Record, error) {
	path, err := s.recordPath(collection, id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", collection, id, err)
	}

	var rec core.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	return rec, nil
}

func (s *Store) Put(ctx context.Context, collection, id string, rec core.Record) error {
	path, err := s.recordPath(collection, id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create collection dir: %w", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	// Write then rename so readers never see a half-written record.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) collectionDir(collection string) (string, error) {
	if !validName(collection) {
		return "", fmt.Errorf("invalid collection %q", collection)
	}
	return filepath.Join(s.root, collection), nil
}

func (s *Store) recordPath(collection, id string) (string, error) {
	dir, err := s.collectionDir(collection)
	if err != nil {
		return "", err
	}
	if !validName(id) {
		return "", fmt.Errorf("%s/%s: %w", collection, id, core.ErrNotFound)
	}
	return filepath.Join(dir, id+recordExt), nil
}

// validName rejects anything that could escape the store root.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
