package postgres

import (
	"context"
	"errors"
	"fmt"
	"scentify/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{
		DB: db,
	}
}

func (r *InventoryRepository) Add(ctx context.Context, item *domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}

	return nil
}

func (r *InventoryRepository) Remove(ctx context.Context, userID uint, perfumeID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND perfume_id = ?", userID, perfumeID).
		Delete(&domain.InventoryItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("inventory item not found")
	}

	return nil
}

func (r *InventoryRepository) Exists(ctx context.Context, userID uint, perfumeID uint64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.InventoryItem{}).
		Where("user_id = ? AND perfume_id = ?", userID, perfumeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check inventory item: %w", err)
	}

	return count > 0, nil
}

// FindPerfumesByUser resolves the user's inventory rows to full perfume
// records in one join.
func (r *InventoryRepository) FindPerfumesByUser(ctx context.Context, userID uint) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var perfumes []domain.Perfume
	err := r.DB.WithContext(ctx).Model(&domain.Perfume{}).
		Joins("JOIN inventory_items ON inventory_items.perfume_id = perfumes.id").
		Where("inventory_items.user_id = ?", userID).
		Order("perfumes.id").
		Find(&perfumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory perfumes: %w", err)
	}

	return perfumes, nil
}
