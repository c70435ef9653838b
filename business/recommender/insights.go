package recommender

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"scentify/domain"
)

const topAccordCount = 5

// Insights summarizes the user's collection: whether a model can be trained,
// the dominant accords, and how varied the collection is (unique primary
// accords over inventory size).
func (s *Service) Insights(ctx context.Context, userID uint) (domain.ModelInsights, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelInsights{}, fmt.Errorf("context error: %w", err)
	}

	owned, err := s.inventoryRepo.FindPerfumesByUser(ctx, userID)
	if err != nil {
		return domain.ModelInsights{}, fmt.Errorf("load inventory: %w", err)
	}

	insights := domain.ModelInsights{
		InventorySize: len(owned),
		CanTrain:      len(owned) >= s.cfg.MinInventorySize,
		TopAccords:    []domain.AccordCount{},
	}
	if len(owned) == 0 {
		return insights, nil
	}

	counts := make(map[string]int)
	categories := make(map[string]struct{})
	for _, p := range owned {
		for _, a := range p.Accords {
			counts[strings.ToLower(strings.TrimSpace(a))]++
		}
		categories[s.categoryOf(p)] = struct{}{}
	}

	accords := make([]domain.AccordCount, 0, len(counts))
	for name, count := range counts {
		accords = append(accords, domain.AccordCount{Name: name, Count: count})
	}
	sort.Slice(accords, func(i, j int) bool {
		if accords[i].Count != accords[j].Count {
			return accords[i].Count > accords[j].Count
		}
		return accords[i].Name < accords[j].Name
	})
	if len(accords) > topAccordCount {
		accords = accords[:topAccordCount]
	}

	insights.TopAccords = accords
	insights.DiversityScore = float64(len(categories)) / float64(len(owned))

	return insights, nil
}
