package catalog

import (
	"context"
	"fmt"
	"sort"

	"scentify/domain"
	"scentify/pkg/logger"
)

// PerfumeRepository contract interface
type PerfumeRepository interface {
	Create(ctx context.Context, perfume *domain.Perfume) error
	Upsert(ctx context.Context, perfume *domain.Perfume) error
	FindByID(ctx context.Context, id uint64) (domain.Perfume, error)
	FindAll(ctx context.Context) ([]domain.Perfume, error)
	Search(ctx context.Context, query string, accord string, limit int) ([]domain.Perfume, error)
}

// RankingRepository supplies per-perfume click counts for popularity ordering.
type RankingRepository interface {
	ClickCounts(ctx context.Context) ([]domain.PerfumeRanking, error)
}

// FragellaRepository is the external perfume database client.
type FragellaRepository interface {
	SearchPerfumes(ctx context.Context, query string, limit int) ([]domain.Perfume, error)
}

type Service struct {
	perfumeRepo  PerfumeRepository
	rankingRepo  RankingRepository
	fragellaRepo FragellaRepository
}

func NewService(
	perfumeRepo PerfumeRepository,
	rankingRepo RankingRepository,
	fragellaRepo FragellaRepository,
) *Service {
	return &Service{
		perfumeRepo:  perfumeRepo,
		rankingRepo:  rankingRepo,
		fragellaRepo: fragellaRepo,
	}
}

const (
	minSearchQueryLen  = 3
	defaultSearchLimit = 20
)

// Search looks up perfumes in the local catalog first. When the local catalog
// has no hits and an external client is configured, it queries the external
// API and upserts the results so they get stable local IDs.
func (s *Service) Search(ctx context.Context, query, accord string, limit int) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(query) < minSearchQueryLen && accord == "" {
		return []domain.Perfume{}, nil
	}
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}

	perfumes, err := s.perfumeRepo.Search(ctx, query, accord, limit)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	if len(perfumes) > 0 || s.fragellaRepo == nil || query == "" {
		return perfumes, nil
	}

	external, err := s.fragellaRepo.SearchPerfumes(ctx, query, limit)
	if err != nil {
		// the local catalog is still authoritative; a flaky external API is
		// not a request failure
		logger.Warn("external perfume search failed", "query", query, "error", err)
		return perfumes, nil
	}

	out := make([]domain.Perfume, 0, len(external))
	for i := range external {
		if err := s.perfumeRepo.Upsert(ctx, &external[i]); err != nil {
			logger.Warn("failed to upsert external perfume",
				"external_id", external[i].ExternalID, "error", err)
			continue
		}
		out = append(out, external[i])
	}

	return out, nil
}

// GetAllPerfumes returns the catalog ordered by click popularity, most
// clicked first; unclicked perfumes keep their relative order at the tail.
func (s *Service) GetAllPerfumes(ctx context.Context) ([]domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	perfumes, err := s.perfumeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.rankingRepo != nil {
		rankings, err := s.rankingRepo.ClickCounts(ctx)
		if err != nil {
			logger.Warn("failed to load perfume rankings", "error", err)
			return perfumes, nil
		}

		clicks := make(map[uint64]int64, len(rankings))
		for _, r := range rankings {
			clicks[r.PerfumeID] = r.Clicks
		}

		sort.SliceStable(perfumes, func(i, j int) bool {
			return clicks[perfumes[i].ID] > clicks[perfumes[j].ID]
		})
	}

	return perfumes, nil
}

func (s *Service) GetPerfumeByID(ctx context.Context, id uint64) (domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Perfume{}, fmt.Errorf("context error: %w", err)
	}

	return s.perfumeRepo.FindByID(ctx, id)
}

func (s *Service) CreatePerfume(ctx context.Context, perfume *domain.Perfume) (*domain.Perfume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if perfume.Name == "" {
		return nil, fmt.Errorf("perfume name is required")
	}
	if perfume.Brand == "" {
		return nil, fmt.Errorf("perfume brand is required")
	}

	if err := s.perfumeRepo.Create(ctx, perfume); err != nil {
		return nil, fmt.Errorf("create perfume: %w", err)
	}

	return perfume, nil
}
