package modelfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"scentify/business/recommender"
)

func testSnapshot() *recommender.Snapshot {
	snap := &recommender.Snapshot{
		Version:       1,
		FeatureDim:    39,
		InventoryHash: 12345,
		TrainedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	snap.Model.Bias = -0.25
	snap.Model.Weights[0] = 1.5
	snap.Scaler.Mean[0] = 0.4
	for i := range snap.Scaler.Std {
		snap.Scaler.Std[i] = 1
	}
	return snap
}

func TestLoadMissingReturnsNil(t *testing.T) {
	store := NewStore(t.TempDir())

	snap, err := store.Load(context.Background(), 42)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Errorf("Load of missing snapshot = %+v, want nil", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	want := testSnapshot()

	if err := store.Save(context.Background(), 42, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(context.Background(), 42)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}

	if got.Version != want.Version ||
		got.FeatureDim != want.FeatureDim ||
		got.InventoryHash != want.InventoryHash {
		t.Errorf("identity fields differ: got %+v", got)
	}
	if got.Model != want.Model {
		t.Error("model weights changed across round trip")
	}
	if got.Scaler != want.Scaler {
		t.Error("scaler changed across round trip")
	}
	if !got.TrainedAt.Equal(want.TrainedAt) {
		t.Errorf("TrainedAt = %v, want %v", got.TrainedAt, want.TrainedAt)
	}
}

func TestSaveIsolatesUsers(t *testing.T) {
	store := NewStore(t.TempDir())

	first := testSnapshot()
	second := testSnapshot()
	second.InventoryHash = 999

	if err := store.Save(context.Background(), 1, first); err != nil {
		t.Fatalf("Save user 1: %v", err)
	}
	if err := store.Save(context.Background(), 2, second); err != nil {
		t.Fatalf("Save user 2: %v", err)
	}

	got, err := store.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("Load user 1: %v", err)
	}
	if got.InventoryHash != first.InventoryHash {
		t.Errorf("user 1 snapshot hash = %d, want %d", got.InventoryHash, first.InventoryHash)
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "user_7.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	_, err := store.Load(context.Background(), 7)
	if !errors.Is(err, recommender.ErrModelLoad) {
		t.Errorf("err = %v, want ErrModelLoad", err)
	}
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	store := NewStore(dir)

	if err := store.Save(context.Background(), 1, testSnapshot()); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "user_1.json")); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}
