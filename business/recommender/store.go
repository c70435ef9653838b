package recommender

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"scentify/domain"
)

// snapshotVersion bumps whenever the persisted layout or the feature encoding
// changes incompatibly.
const snapshotVersion = 1

// Snapshot is the persisted form of a trained model. FeatureDim is stored so a
// snapshot written by an older encoder is rejected instead of silently
// producing garbage scores.
type Snapshot struct {
	Version       int           `json:"version"`
	FeatureDim    int           `json:"feature_dim"`
	InventoryHash uint64        `json:"inventory_hash"`
	Scaler        Scaler        `json:"scaler"`
	Model         LogisticModel `json:"model"`
	TrainedAt     time.Time     `json:"trained_at"`
}

// ModelStore persists one snapshot per user. Load returns (nil, nil) when no
// snapshot exists; unreadable or corrupt snapshots come back as an error
// wrapping ErrModelLoad.
type ModelStore interface {
	Load(ctx context.Context, userID uint) (*Snapshot, error)
	Save(ctx context.Context, userID uint, snap *Snapshot) error
}

func snapshotFromModel(tm *TrainedModel) *Snapshot {
	return &Snapshot{
		Version:       snapshotVersion,
		FeatureDim:    featureDim,
		InventoryHash: tm.InventoryHash,
		Scaler:        tm.Scaler,
		Model:         tm.Model,
		TrainedAt:     tm.TrainedAt,
	}
}

func modelFromSnapshot(snap *Snapshot) *TrainedModel {
	return &TrainedModel{
		Scaler:        snap.Scaler,
		Model:         snap.Model,
		InventoryHash: snap.InventoryHash,
		TrainedAt:     snap.TrainedAt,
	}
}

// reusable is the explicit staleness decision: a persisted snapshot may only
// be reused when it matches both the current encoder layout and the current
// inventory identity. Anything else forces a retrain.
func reusable(snap *Snapshot, inventoryHash uint64) bool {
	if snap == nil {
		return false
	}
	if snap.Version != snapshotVersion || snap.FeatureDim != featureDim {
		return false
	}
	return snap.InventoryHash == inventoryHash
}

// inventoryHash derives the inventory identity marker: FNV-64a over the sorted
// owned perfume IDs. Order-independent, cheap, and stable across processes.
func inventoryHash(owned []domain.Perfume) uint64 {
	ids := make([]uint64, 0, len(owned))
	for _, p := range owned {
		ids = append(ids, p.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := fnv.New64a()
	for _, id := range ids {
		fmt.Fprintf(h, "%d|", id)
	}
	return h.Sum64()
}
