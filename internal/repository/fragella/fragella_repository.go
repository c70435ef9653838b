package fragella

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scentify/domain"

	"gorm.io/datatypes"
)

type FragellaConfig struct {
	BaseURL string
	APIKey  string
}

type FragellaRepository struct {
	fragellaConfig FragellaConfig
	client         *http.Client
}

func NewFragellaRepository(cfg FragellaConfig) *FragellaRepository {
	return &FragellaRepository{
		fragellaConfig: cfg,
		client:         &http.Client{Timeout: 15 * time.Second},
	}
}

// apiPerfume is the wire shape of one Fragella fragrance record. The API is
// loose about optional fields; anything missing is defaulted in transform.
type apiPerfume struct {
	ID            string             `json:"id"`
	Brand         string             `json:"brand"`
	Name          string             `json:"name"`
	MainAccords   []string           `json:"main_accords"`
	SeasonRanking []apiRankingEntry  `json:"season_ranking"`
	Occasion      map[string]float64 `json:"occasion"`
	Longevity     string             `json:"longevity"`
	Sillage       string             `json:"sillage"`
	Gender        string             `json:"gender"`
	ImageURL      string             `json:"image_url"`
}

type apiRankingEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

const maxSearchLimit = 20

// SearchPerfumes queries the external perfume database. No retry or backoff;
// callers treat a failed call as "no external results".
func (r *FragellaRepository) SearchPerfumes(ctx context.Context, query string, limit int) ([]domain.Perfume, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	endpoint := fmt.Sprintf("%s/fragrances?search=%s&limit=%d",
		strings.TrimRight(r.fragellaConfig.BaseURL, "/"),
		url.QueryEscape(query),
		limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("x-api-key", r.fragellaConfig.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fragella request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return []domain.Perfume{}, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fragella returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragella response: %w", err)
	}

	var apiPerfumes []apiPerfume
	if err := json.Unmarshal(body, &apiPerfumes); err != nil {
		return nil, fmt.Errorf("failed to decode fragella response: %w", err)
	}

	perfumes := make([]domain.Perfume, 0, len(apiPerfumes))
	for _, ap := range apiPerfumes {
		perfumes = append(perfumes, transform(ap))
	}

	return perfumes, nil
}

// transform maps one API record into the internal catalog shape. Seasonal and
// occasion scores arrive on a 0-5 scale and are normalized to [0, 1]; missing
// values are simply omitted so the feature encoder applies its own defaults.
func transform(ap apiPerfume) domain.Perfume {
	seasonality := datatypes.JSONMap{}
	for _, entry := range ap.SeasonRanking {
		name := strings.ToLower(entry.Name)
		score := clamp01(entry.Score / 5.0)
		switch {
		case strings.Contains(name, "winter"):
			seasonality["winter"] = score
		case strings.Contains(name, "fall"), strings.Contains(name, "autumn"):
			seasonality["fall"] = score
		case strings.Contains(name, "spring"):
			seasonality["spring"] = score
		case strings.Contains(name, "summer"):
			seasonality["summer"] = score
		}
	}

	occasion := datatypes.JSONMap{}
	for name, score := range ap.Occasion {
		key := strings.ToLower(name)
		if key == "day" || key == "night" {
			occasion[key] = clamp01(score / 5.0)
		}
	}

	externalID := ap.ID
	if externalID == "" {
		// stable fallback identity for records the API ships without an id
		externalID = strings.ToLower(ap.Brand + "/" + ap.Name)
	}

	return domain.Perfume{
		ExternalID:  externalID,
		Brand:       ap.Brand,
		Name:        ap.Name,
		Accords:     datatypes.NewJSONSlice(ap.MainAccords),
		Seasonality: seasonality,
		Occasion:    occasion,
		Longevity:   strings.ToLower(ap.Longevity),
		Sillage:     strings.ToLower(ap.Sillage),
		Gender:      strings.ToLower(ap.Gender),
		ImageURL:    ap.ImageURL,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
