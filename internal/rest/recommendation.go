package rest

import (
	"context"
	"net/http"
	"scentify/business/recommender"
	"scentify/domain"
	"scentify/pkg/logger"
	"scentify/pkg/metrics"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		recommenderService RecommenderService
		timeout            time.Duration
	}

	RecommenderService interface {
		Recommend(ctx context.Context, userID uint) ([]domain.Recommendation, error)
		Insights(ctx context.Context, userID uint) (domain.ModelInsights, error)
	}
)

func NewRecommendationHandler(svc RecommenderService) *RecommendationHandler {
	return &RecommendationHandler{
		recommenderService: svc,
		timeout:            15 * time.Second,
	}
}

// GET /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommenderService.Recommend(ctx, userID)
	if err != nil {
		if recommender.IsInsufficientData(err) {
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/insights
func (h *RecommendationHandler) Insights(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	insights, err := h.recommenderService.Insights(ctx, userID)
	if err != nil {
		logger.Error("Failed to compute model insights", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(insights))
}
