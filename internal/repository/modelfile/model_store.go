package modelfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scentify/business/recommender"
)

// Store persists one model snapshot per user as a JSON file under dir.
// Implements recommender.ModelStore.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(userID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_%d.json", userID))
}

// Load returns (nil, nil) when no snapshot exists for the user. Unreadable or
// corrupt files come back wrapping recommender.ErrModelLoad so the caller
// falls back to retraining.
func (s *Store) Load(ctx context.Context, userID uint) (*recommender.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", recommender.ErrModelLoad, err)
	}

	var snap recommender.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", recommender.ErrModelLoad, err)
	}

	return &snap, nil
}

// Save writes the snapshot atomically (temp file + rename) so a crash mid
// write never leaves a truncated model behind.
func (s *Store) Save(ctx context.Context, userID uint, snap *recommender.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model dir: %w", err)
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal model snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(userID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
