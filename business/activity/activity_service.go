package activity

import (
	"context"
	"fmt"

	"scentify/domain"
)

// InteractionRepository contract interface
type InteractionRepository interface {
	Save(ctx context.Context, interaction domain.Interaction) error
	FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error)
}

type Service struct {
	interactionRepo InteractionRepository
}

func NewService(interactionRepo InteractionRepository) *Service {
	return &Service{interactionRepo: interactionRepo}
}

var validEventTypes = map[string]bool{
	domain.InteractionView:     true,
	domain.InteractionClick:    true,
	domain.InteractionFavorite: true,
	domain.InteractionAdd:      true,
	domain.InteractionRemove:   true,
}

// Record persists one user interaction. The click stream feeds the catalog's
// popularity ordering.
func (s *Service) Record(ctx context.Context, interaction domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if !validEventTypes[interaction.EventType] {
		return fmt.Errorf("unknown event type: %s", interaction.EventType)
	}

	if err := s.interactionRepo.Save(ctx, interaction); err != nil {
		return fmt.Errorf("save interaction: %w", err)
	}

	return nil
}

func (s *Service) History(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 50
	}

	return s.interactionRepo.FindByUser(ctx, userID, limit)
}
