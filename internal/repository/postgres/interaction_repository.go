package postgres

import (
	"context"
	"fmt"
	"scentify/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

func (r *InteractionRepository) Save(ctx context.Context, interaction domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&interaction).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

func (r *InteractionRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	tx := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&interactions).Error; err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}

	return interactions, nil
}

// ClickCounts aggregates click interactions per perfume for popularity
// ordering.
func (r *InteractionRepository) ClickCounts(ctx context.Context) ([]domain.PerfumeRanking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rankings []domain.PerfumeRanking
	err := r.DB.WithContext(ctx).Model(&domain.Interaction{}).
		Select("perfume_id, COUNT(*) AS clicks").
		Where("event_type = ?", domain.InteractionClick).
		Group("perfume_id").
		Scan(&rankings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate click counts: %w", err)
	}

	return rankings, nil
}
