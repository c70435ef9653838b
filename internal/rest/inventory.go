package rest

import (
	"context"
	"errors"
	"net/http"
	"scentify/business/inventory"
	"scentify/domain"
	"scentify/pkg/logger"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type InventoryService interface {
	AddPerfume(ctx context.Context, userID uint, perfumeID uint64) (domain.Perfume, error)
	RemovePerfume(ctx context.Context, userID uint, perfumeID uint64) error
	ListPerfumes(ctx context.Context, userID uint) ([]domain.Perfume, error)
}

type InventoryHandler struct {
	inventoryService InventoryService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewInventoryHandler(inventoryService InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type AddInventoryRequest struct {
	PerfumeID uint64 `json:"perfume_id" validate:"required"`
}

// POST /api/v1/inventory
func (h *InventoryHandler) AddPerfume(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req AddInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfume, err := h.inventoryService.AddPerfume(ctx, userID, req.PerfumeID)
	if err != nil {
		if errors.Is(err, inventory.ErrAlreadyOwned) {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		if err.Error() == "perfume not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to add perfume to inventory", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(perfume))
}

// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) RemovePerfume(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	perfumeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid perfume id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.inventoryService.RemovePerfume(ctx, userID, perfumeID); err != nil {
		if errors.Is(err, inventory.ErrNotOwned) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to remove perfume from inventory", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "perfume removed from inventory",
		"perfume_id": perfumeID,
	})
}

// GET /api/v1/inventory
func (h *InventoryHandler) ListPerfumes(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	perfumes, err := h.inventoryService.ListPerfumes(ctx, userID)
	if err != nil {
		logger.Error("Failed to list inventory", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(perfumes))
}
