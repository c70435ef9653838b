package rest

import (
	"context"
	"net/http"
	"scentify/domain"
	"scentify/pkg/logger"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type CatalogService interface {
	Search(ctx context.Context, query, accord string, limit int) ([]domain.Perfume, error)
	GetAllPerfumes(ctx context.Context) ([]domain.Perfume, error)
	GetPerfumeByID(ctx context.Context, id uint64) (domain.Perfume, error)
	CreatePerfume(ctx context.Context, perfume *domain.Perfume) (*domain.Perfume, error)
}

type PerfumeHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewPerfumeHandler(catalogService CatalogService) *PerfumeHandler {
	return &PerfumeHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        15 * time.Second,
	}
}

type SearchPerfumeQuery struct {
	Q      string `query:"q" validate:"required,min=3"`
	Accord string `query:"accord"`
	Limit  int    `query:"limit"`
}

type CreatePerfumeRequest struct {
	ExternalID  string             `json:"external_id"`
	Brand       string             `json:"brand" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Accords     []string           `json:"accords"`
	Seasonality map[string]float64 `json:"seasonality"`
	Occasion    map[string]float64 `json:"occasion"`
	Longevity   string             `json:"longevity"`
	Sillage     string             `json:"sillage"`
	Gender      string             `json:"gender"`
	ImageURL    string             `json:"image_url"`
}

// GET /api/v1/perfumes/search?q=oud&accord=woody&limit=10
func (h *PerfumeHandler) Search(c echo.Context) error {
	var q SearchPerfumeQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfumes, err := h.catalogService.Search(ctx, q.Q, q.Accord, q.Limit)
	if err != nil {
		logger.Error("Failed to search perfumes", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(perfumes))
}

func (h *PerfumeHandler) GetAllPerfumes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfumes, err := h.catalogService.GetAllPerfumes(ctx)
	if err != nil {
		logger.Error("Failed to find all perfumes", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all perfumes",
		"perfumes": perfumes,
	})
}

func (h *PerfumeHandler) GetPerfumeByID(c echo.Context) error {
	perfumeIDStr := c.Param("id")

	perfumeID, err := strconv.ParseUint(perfumeIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid perfume id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfume, err := h.catalogService.GetPerfumeByID(ctx, perfumeID)
	if err != nil {
		if err.Error() == "perfume not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find perfume by id",
		"perfume": perfume,
	})
}

func (h *PerfumeHandler) CreatePerfume(c echo.Context) error {
	var req CreatePerfumeRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate perfume request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfume := &domain.Perfume{
		ExternalID:  req.ExternalID,
		Brand:       req.Brand,
		Name:        req.Name,
		Accords:     datatypes.NewJSONSlice(req.Accords),
		Seasonality: toJSONMap(req.Seasonality),
		Occasion:    toJSONMap(req.Occasion),
		Longevity:   req.Longevity,
		Sillage:     req.Sillage,
		Gender:      req.Gender,
		ImageURL:    req.ImageURL,
	}

	newPerfume, err := h.catalogService.CreatePerfume(ctx, perfume)
	if err != nil {
		logger.Error("Failed to create perfume", err)
		if err.Error() == "perfume name is required" ||
			err.Error() == "perfume brand is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newPerfume))
}

func toJSONMap(src map[string]float64) datatypes.JSONMap {
	if len(src) == 0 {
		return datatypes.JSONMap{}
	}
	out := datatypes.JSONMap{}
	for k, v := range src {
		out[k] = v
	}
	return out
}
