package recommender

import (
	"fmt"
	"math/rand"
	"sort"

	"scentify/domain"
)

// Sample is one labeled training example. Label is 1 for owned, 0 for sampled
// non-owned.
type Sample struct {
	X     featureVector
	Label float64
}

// buildSamples constructs the training set: one positive per owned perfume and
// ratio×|owned| negatives drawn without replacement from the non-owned part of
// the catalog. The candidate pool is sorted by ID before the seeded shuffle, so
// the output depends only on (owned set, catalog set, seed) and not on the
// order the catalog happened to arrive in.
func buildSamples(owned, catalog []domain.Perfume, cfg Config) ([]Sample, error) {
	cfg = cfg.normalized()

	if len(owned) < cfg.MinInventorySize {
		return nil, fmt.Errorf("inventory has %d perfumes, need %d: %w",
			len(owned), cfg.MinInventorySize, ErrInsufficientData)
	}

	ownedIDs := make(map[uint64]struct{}, len(owned))
	for _, p := range owned {
		ownedIDs[p.ID] = struct{}{}
	}

	pool := make([]domain.Perfume, 0, len(catalog))
	for _, p := range catalog {
		if _, ok := ownedIDs[p.ID]; !ok {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no non-owned perfumes in catalog: %w", ErrInsufficientData)
	}

	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	numNegatives := cfg.NegativeSamplesRatio * len(owned)
	if numNegatives > len(pool) {
		numNegatives = len(pool)
	}

	samples := make([]Sample, 0, len(owned)+numNegatives)
	for _, p := range owned {
		samples = append(samples, Sample{X: encodeFeatures(p), Label: 1})
	}
	for _, p := range pool[:numNegatives] {
		samples = append(samples, Sample{X: encodeFeatures(p), Label: 0})
	}

	return samples, nil
}
