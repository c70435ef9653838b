package postgres

import (
	"context"
	"errors"
	"fmt"
	"scentify/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PerfumeRepository struct {
	DB *gorm.DB
}

func NewPerfumeRepository(db *gorm.DB) *PerfumeRepository {
	return &PerfumeRepository{
		DB: db,
	}
}

func (r *PerfumeRepository) Create(ctx context.Context, perfume *domain.Perfume) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(perfume).Error; err != nil {
		return fmt.Errorf("failed to create perfume: %w", err)
	}

	return nil
}

// Upsert inserts a perfume or refreshes the existing row matched by
// external_id, so repeated external API syncs keep stable local IDs.
func (r *PerfumeRepository) Upsert(ctx context.Context, perfume *domain.Perfume) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"brand", "name", "accords", "seasonality", "occasion",
			"longevity", "sillage", "gender", "image_url",
		}),
	}).Create(perfume).Error
	if err != nil {
		return fmt.Errorf("failed to upsert perfume: %w", err)
	}

	// recover the row ID when the conflict path took over
	if perfume.ID == 0 && perfume.ExternalID != "" {
		var existing domain.Perfume
		if err := r.DB.WithContext(ctx).
			Where("external_id = ?", perfume.ExternalID).
			First(&existing).Error; err == nil {
			perfume.ID = existing.ID
		}
	}

	return nil
}

func (r *PerfumeRepository) FindByID(ctx context.Context, id uint64) (domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Perfume{}, fmt.Errorf("context error: %w", err)
	}

	var perfume domain.Perfume

	err := r.DB.WithContext(ctx).First(&perfume, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Perfume{}, errors.New("perfume not found")
		}
		return domain.Perfume{}, fmt.Errorf("failed to find perfume: %w", err)
	}

	return perfume, nil
}

func (r *PerfumeRepository) FindAll(ctx context.Context) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var perfumes []domain.Perfume
	if err := r.DB.WithContext(ctx).Find(&perfumes).Error; err != nil {
		return nil, fmt.Errorf("failed to find perfumes: %w", err)
	}

	return perfumes, nil
}

// Search matches name or brand by case-insensitive substring, optionally
// requiring an accord tag in the accords JSON array.
func (r *PerfumeRepository) Search(ctx context.Context, query, accord string, limit int) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tx := r.DB.WithContext(ctx).Model(&domain.Perfume{})

	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}
	if accord != "" {
		tx = tx.Where("accords @> ?", fmt.Sprintf(`["%s"]`, accord))
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var perfumes []domain.Perfume
	if err := tx.Order("id").Find(&perfumes).Error; err != nil {
		return nil, fmt.Errorf("failed to search perfumes: %w", err)
	}

	return perfumes, nil
}
