package inventory

import (
	"context"
	"errors"
	"fmt"

	"scentify/domain"
	"scentify/pkg/logger"
)

var ErrAlreadyOwned = errors.New("perfume already in inventory")
var ErrNotOwned = errors.New("perfume not in inventory")

// InventoryRepository contract interface
type InventoryRepository interface {
	Add(ctx context.Context, item *domain.InventoryItem) error
	Remove(ctx context.Context, userID uint, perfumeID uint64) error
	Exists(ctx context.Context, userID uint, perfumeID uint64) (bool, error)
	FindPerfumesByUser(ctx context.Context, userID uint) ([]domain.Perfume, error)
}

type PerfumeRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Perfume, error)
}

type InteractionRepository interface {
	Save(ctx context.Context, interaction domain.Interaction) error
}

type Service struct {
	inventoryRepo   InventoryRepository
	perfumeRepo     PerfumeRepository
	interactionRepo InteractionRepository
}

func NewService(
	inventoryRepo InventoryRepository,
	perfumeRepo PerfumeRepository,
	interactionRepo InteractionRepository,
) *Service {
	return &Service{
		inventoryRepo:   inventoryRepo,
		perfumeRepo:     perfumeRepo,
		interactionRepo: interactionRepo,
	}
}

// AddPerfume puts a catalog perfume into the user's inventory and records the
// interaction. Duplicate adds are rejected, not silently ignored, so the UI
// can tell the user.
func (s *Service) AddPerfume(ctx context.Context, userID uint, perfumeID uint64) (domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Perfume{}, fmt.Errorf("context error: %w", err)
	}

	perfume, err := s.perfumeRepo.FindByID(ctx, perfumeID)
	if err != nil {
		return domain.Perfume{}, fmt.Errorf("resolve perfume: %w", err)
	}

	owned, err := s.inventoryRepo.Exists(ctx, userID, perfumeID)
	if err != nil {
		return domain.Perfume{}, fmt.Errorf("check inventory: %w", err)
	}
	if owned {
		return domain.Perfume{}, ErrAlreadyOwned
	}

	item := domain.InventoryItem{
		UserID:    userID,
		PerfumeID: perfumeID,
	}
	if err := s.inventoryRepo.Add(ctx, &item); err != nil {
		return domain.Perfume{}, fmt.Errorf("add to inventory: %w", err)
	}

	s.record(ctx, userID, perfumeID, domain.InteractionAdd)

	return perfume, nil
}

func (s *Service) RemovePerfume(ctx context.Context, userID uint, perfumeID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	owned, err := s.inventoryRepo.Exists(ctx, userID, perfumeID)
	if err != nil {
		return fmt.Errorf("check inventory: %w", err)
	}
	if !owned {
		return ErrNotOwned
	}

	if err := s.inventoryRepo.Remove(ctx, userID, perfumeID); err != nil {
		return fmt.Errorf("remove from inventory: %w", err)
	}

	s.record(ctx, userID, perfumeID, domain.InteractionRemove)

	return nil
}

// ListPerfumes returns the user's owned perfumes resolved to full records.
func (s *Service) ListPerfumes(ctx context.Context, userID uint) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.inventoryRepo.FindPerfumesByUser(ctx, userID)
}

func (s *Service) record(ctx context.Context, userID uint, perfumeID uint64, eventType string) {
	if s.interactionRepo == nil {
		return
	}

	err := s.interactionRepo.Save(ctx, domain.Interaction{
		UserID:    userID,
		PerfumeID: perfumeID,
		EventType: eventType,
	})
	if err != nil {
		// interaction history is best-effort; the inventory write already landed
		logger.Warn("failed to record interaction",
			"user_id", userID, "perfume_id", perfumeID, "event_type", eventType, "error", err)
	}
}
