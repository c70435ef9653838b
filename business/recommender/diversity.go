package recommender

import (
	"fmt"
	"sort"
	"strings"

	"scentify/domain"
)

// Confidence labels by probability band.
const (
	ConfidenceHigh   = "Highly recommended"
	ConfidenceStrong = "Strong match"
	ConfidenceGood   = "Good match"
)

const (
	highConfidenceThreshold   = 0.8
	strongConfidenceThreshold = 0.65
)

// CategoryFunc buckets a perfume for the diversity cap. The default is the
// perfume's primary accord.
type CategoryFunc func(domain.Perfume) string

// diversify sorts scored candidates by descending probability (ties broken by
// ascending ID), then walks the list greedily, skipping any candidate whose
// category already hit maxPerCategory. Skipped candidates are not
// reconsidered. Returns at most topN entries; fewer when the cutoff left less.
func diversify(
	scored []ScoredPerfume,
	ownedAccords map[string]struct{},
	topN, maxPerCategory int,
	categoryOf CategoryFunc,
) []domain.Recommendation {

	if categoryOf == nil {
		categoryOf = primaryAccord
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Probability != scored[j].Probability {
			return scored[i].Probability > scored[j].Probability
		}
		return scored[i].Perfume.ID < scored[j].Perfume.ID
	})

	out := make([]domain.Recommendation, 0, topN)
	categoryCounts := make(map[string]int)

	for _, s := range scored {
		if len(out) >= topN {
			break
		}

		category := categoryOf(s.Perfume)
		if categoryCounts[category] >= maxPerCategory {
			continue
		}
		categoryCounts[category]++

		out = append(out, domain.Recommendation{
			PerfumeID:   s.Perfume.ID,
			Brand:       s.Perfume.Brand,
			Name:        s.Perfume.Name,
			Probability: s.Probability,
			Confidence:  confidenceLabel(s.Probability),
			Reasoning:   reasoning(s.Perfume, ownedAccords, s.Probability),
		})
	}

	return out
}

func confidenceLabel(probability float64) string {
	switch {
	case probability >= highConfidenceThreshold:
		return ConfidenceHigh
	case probability >= strongConfidenceThreshold:
		return ConfidenceStrong
	default:
		return ConfidenceGood
	}
}

// reasoning builds the human-readable explanation from the accords the
// candidate shares with the user's collection.
func reasoning(p domain.Perfume, ownedAccords map[string]struct{}, probability float64) string {
	var shared []string
	for _, a := range p.Accords {
		tag := strings.ToLower(strings.TrimSpace(a))
		if _, ok := ownedAccords[tag]; ok {
			shared = append(shared, tag)
		}
	}

	var text string
	if len(shared) > 0 {
		if len(shared) > 2 {
			shared = shared[:2]
		}
		text = fmt.Sprintf("Matches your preference for %s scents", strings.Join(shared, ", "))
	} else {
		text = fmt.Sprintf("Complements your collection with %s notes", primaryAccord(p))
	}

	return fmt.Sprintf("%s (%d%% match)", text, int(probability*100))
}

// ownedAccordUnion collects the lowercase accord set across the inventory.
func ownedAccordUnion(owned []domain.Perfume) map[string]struct{} {
	union := make(map[string]struct{})
	for _, p := range owned {
		for _, a := range p.Accords {
			union[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
		}
	}
	return union
}
