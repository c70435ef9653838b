package rest

import (
	"context"
	"net/http"
	"scentify/domain"
	"scentify/pkg/logger"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type ActivityService interface {
	Record(ctx context.Context, interaction domain.Interaction) error
	History(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error)
}

type InteractionHandler struct {
	activityService ActivityService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewInteractionHandler(activityService ActivityService) *InteractionHandler {
	return &InteractionHandler{
		activityService: activityService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type RecordInteractionRequest struct {
	PerfumeID uint64                 `json:"perfume_id" validate:"required"`
	EventType string                 `json:"event_type" validate:"required,oneof=view click favorite add remove"`
	Context   map[string]interface{} `json:"context"`
}

type HistoryQuery struct {
	Limit int `query:"limit"`
}

// POST /api/v1/interactions
func (h *InteractionHandler) Record(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RecordInteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interaction := domain.Interaction{
		UserID:    userID,
		PerfumeID: req.PerfumeID,
		EventType: req.EventType,
		Context:   datatypes.JSONMap(req.Context),
		CreatedAt: time.Now(),
	}

	if err := h.activityService.Record(ctx, interaction); err != nil {
		if strings.Contains(err.Error(), "unknown event type") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to record interaction", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("interaction recorded"))
}

// GET /api/v1/interactions?limit=50
func (h *InteractionHandler) History(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interactions, err := h.activityService.History(ctx, userID, q.Limit)
	if err != nil {
		logger.Error("Failed to load interaction history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(interactions))
}
