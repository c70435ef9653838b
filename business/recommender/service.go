package recommender

import (
	"context"
	"errors"
	"fmt"

	"scentify/domain"
	"scentify/pkg/logger"
)

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Perfume, error)
}

type InventoryRepository interface {
	FindPerfumesByUser(ctx context.Context, userID uint) ([]domain.Perfume, error)
}

// ---- Usecase / Service ----

type Service struct {
	catalogRepo   CatalogRepository
	inventoryRepo InventoryRepository
	modelStore    ModelStore
	cfg           Config
	categoryOf    CategoryFunc
}

func NewService(
	catalogRepo CatalogRepository,
	inventoryRepo InventoryRepository,
	modelStore ModelStore,
	cfg Config,
) *Service {
	return &Service{
		catalogRepo:   catalogRepo,
		inventoryRepo: inventoryRepo,
		modelStore:    modelStore,
		cfg:           cfg.normalized(),
		categoryOf:    primaryAccord,
	}
}

// Recommend trains (or reuses) a per-user model and returns the diversity
// filtered top-N recommendations. The whole computation is a function of the
// inventory snapshot, the catalog snapshot, the config and the persisted
// snapshot; nothing else is consulted.
func (s *Service) Recommend(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	owned, err := s.inventoryRepo.FindPerfumesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if len(owned) < s.cfg.MinInventorySize {
		return nil, fmt.Errorf("inventory has %d perfumes, need %d: %w",
			len(owned), s.cfg.MinInventorySize, ErrInsufficientData)
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tm, err := s.modelFor(ctx, userID, owned, catalog)
	if err != nil {
		return nil, err
	}

	ownedIDs := make(map[uint64]struct{}, len(owned))
	for _, p := range owned {
		ownedIDs[p.ID] = struct{}{}
	}

	scored := scoreCandidates(tm, catalog, ownedIDs, s.cfg.MinProbability)
	recs := diversify(scored, ownedAccordUnion(owned), s.cfg.TopN, s.cfg.MaxPerCategory, s.categoryOf)

	logger.Debug("recommendations_served",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"inventory_size", len(owned),
		"candidates", len(catalog)-len(owned),
		"above_cutoff", len(scored),
		"returned", len(recs),
	)
	recommendationsServedTotal.Add(float64(len(recs)))

	return recs, nil
}

// modelFor reuses the persisted snapshot when it matches the current inventory
// identity, otherwise retrains and persists. A failed load is treated as "no
// model available", never as a fatal error.
func (s *Service) modelFor(
	ctx context.Context,
	userID uint,
	owned, catalog []domain.Perfume,
) (*TrainedModel, error) {

	hash := inventoryHash(owned)

	if s.modelStore != nil {
		snap, err := s.modelStore.Load(ctx, userID)
		if err != nil {
			logger.Warn("persisted model unusable, retraining",
				"user_id", userID, "error", err)
		} else if reusable(snap, hash) {
			modelReusesTotal.Inc()
			return modelFromSnapshot(snap), nil
		}
	}

	samples, err := buildSamples(owned, catalog, s.cfg)
	if err != nil {
		return nil, err
	}

	tm, err := train(samples, hash)
	if err != nil {
		return nil, err
	}
	modelTrainsTotal.Inc()

	if s.modelStore != nil {
		if err := s.modelStore.Save(ctx, userID, snapshotFromModel(tm)); err != nil {
			// scoring still works from the in-memory model
			logger.Warn("failed to persist model snapshot", "user_id", userID, "error", err)
		}
	}

	return tm, nil
}

// IsInsufficientData reports whether err means the caller should prompt the
// user to grow their inventory instead of surfacing a server error.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData) || errors.Is(err, ErrDegenerateTrainingSet)
}
