// Package state persists the migration checkpoint to a JSON file. The
// checkpoint is rewritten in full after every migrated record, so a crash
// loses at most the in-flight record's side effects. A crash between the
// destination create call and the checkpoint flush leaves an orphan post
// that will be created again on rerun; that at-least-once gap is accepted.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"liferay2wp/internal/domain"
)

// FileStore loads and saves the checkpoint at a fixed path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the checkpoint. A missing file yields an empty state; any
// other read or parse failure is an error, since running against an
// unknown checkpoint risks duplicating the whole migration.
func (s *FileStore) Load(ctx context.Context) (*domain.MigrationState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewMigrationState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", s.path, err)
	}

	st := domain.NewMigrationState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	return st, nil
}

// Save rewrites the checkpoint atomically via a temp file rename.
func (s *FileStore) Save(ctx context.Context, st *domain.MigrationState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create state directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file %s: %w", s.path, err)
	}
	return nil
}
