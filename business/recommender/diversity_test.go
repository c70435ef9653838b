package recommender

import (
	"strings"
	"testing"

	"scentify/domain"
)

func scoredList(entries ...ScoredPerfume) []ScoredPerfume {
	return entries
}

func TestDiversifyCapsPerCategory(t *testing.T) {
	scored := scoredList(
		ScoredPerfume{Perfume: perfumeWithAccords(1, "floral"), Probability: 0.95},
		ScoredPerfume{Perfume: perfumeWithAccords(2, "floral"), Probability: 0.90},
		ScoredPerfume{Perfume: perfumeWithAccords(3, "floral"), Probability: 0.85},
		ScoredPerfume{Perfume: perfumeWithAccords(4, "woody"), Probability: 0.80},
		ScoredPerfume{Perfume: perfumeWithAccords(5, "woody"), Probability: 0.75},
		ScoredPerfume{Perfume: perfumeWithAccords(6, "woody"), Probability: 0.70},
		ScoredPerfume{Perfume: perfumeWithAccords(7, "citrus"), Probability: 0.65},
	)

	recs := diversify(scored, nil, 6, 2, nil)

	counts := make(map[string]int)
	for _, r := range recs {
		switch r.PerfumeID {
		case 1, 2, 3:
			counts["floral"]++
		case 4, 5, 6:
			counts["woody"]++
		default:
			counts["citrus"]++
		}
	}

	for category, count := range counts {
		if count > 2 {
			t.Errorf("category %s has %d entries, cap is 2", category, count)
		}
	}
	if len(recs) != 5 {
		t.Errorf("got %d recommendations, want 5 (2 floral + 2 woody + 1 citrus)", len(recs))
	}
}

func TestDiversifyTopNAndOrdering(t *testing.T) {
	accords := []string{"floral", "woody", "citrus", "fresh", "leather", "amber", "musk", "oud"}
	scored := make([]ScoredPerfume, 0, len(accords))
	for i, accord := range accords {
		scored = append(scored, ScoredPerfume{
			Perfume:     perfumeWithAccords(uint64(i+1), accord),
			Probability: 0.9 - float64(i)*0.05,
		})
	}

	recs := diversify(scored, nil, 6, 2, nil)
	if len(recs) != 6 {
		t.Fatalf("got %d recommendations, want topN=6", len(recs))
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].Probability > recs[i-1].Probability {
			t.Errorf("recommendations not sorted by descending probability at index %d", i)
		}
	}
}

func TestDiversifyTieBreaksByID(t *testing.T) {
	scored := scoredList(
		ScoredPerfume{Perfume: perfumeWithAccords(9, "floral"), Probability: 0.8},
		ScoredPerfume{Perfume: perfumeWithAccords(3, "woody"), Probability: 0.8},
	)

	recs := diversify(scored, nil, 6, 2, nil)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].PerfumeID != 3 {
		t.Errorf("first rec = %d, want lower ID 3 on probability tie", recs[0].PerfumeID)
	}
}

func TestConfidenceLabels(t *testing.T) {
	cases := []struct {
		probability float64
		want        string
	}{
		{0.95, ConfidenceHigh},
		{0.80, ConfidenceHigh},
		{0.70, ConfidenceStrong},
		{0.65, ConfidenceStrong},
		{0.55, ConfidenceGood},
	}

	for _, tc := range cases {
		if got := confidenceLabel(tc.probability); got != tc.want {
			t.Errorf("confidenceLabel(%v) = %q, want %q", tc.probability, got, tc.want)
		}
	}
}

func TestReasoningSharedAccords(t *testing.T) {
	owned := map[string]struct{}{"floral": {}, "rose": {}}
	p := domain.Perfume{}
	p.Accords = perfumeWithAccords(0, "floral", "rose", "musk").Accords

	text := reasoning(p, owned, 0.87)
	if !strings.Contains(text, "Matches your preference for floral, rose scents") {
		t.Errorf("reasoning = %q, want shared-accord phrasing", text)
	}
	if !strings.Contains(text, "(87% match)") {
		t.Errorf("reasoning = %q, want probability suffix", text)
	}
}

func TestReasoningComplement(t *testing.T) {
	owned := map[string]struct{}{"floral": {}}
	p := perfumeWithAccords(0, "leather")

	text := reasoning(p, owned, 0.6)
	if !strings.Contains(text, "Complements your collection with leather notes") {
		t.Errorf("reasoning = %q, want complement phrasing", text)
	}
}
