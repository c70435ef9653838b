package recommender

import "scentify/domain"

// ScoredPerfume is a candidate that survived the probability cutoff.
type ScoredPerfume struct {
	Perfume     domain.Perfume
	Probability float64
}

// scoreCandidates runs every non-owned candidate through the fitted model and
// keeps those at or above minProbability. Owned perfumes are never scored.
// Deterministic: no randomness at scoring time.
func scoreCandidates(
	tm *TrainedModel,
	candidates []domain.Perfume,
	ownedIDs map[uint64]struct{},
	minProbability float64,
) []ScoredPerfume {

	scored := make([]ScoredPerfume, 0, len(candidates))

	for _, p := range candidates {
		if _, owned := ownedIDs[p.ID]; owned {
			continue
		}

		prob := tm.predict(encodeFeatures(p))
		if prob < minProbability {
			continue
		}

		scored = append(scored, ScoredPerfume{
			Perfume:     p,
			Probability: prob,
		})
	}

	return scored
}
