package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	InsightsHandler struct {
		signalService SignalService
		timeout       time.Duration
	}

	SignalService interface {
		BrowsingPattern(ctx context.Context, sessionID string) ([]domain.BrowsingEntry, error)
		TrendingProductIDs(ctx context.Context, windowDays, limit int) ([]uint64, error)
		MostViewed(ctx context.Context, days, limit int) ([]uint64, error)
		HighConversion(ctx context.Context, limit int) ([]uint64, error)
	}
)

func NewInsightsHandler(svc SignalService) *InsightsHandler {
	return &InsightsHandler{
		signalService: svc,
		timeout:       10 * time.Second,
	}
}

func (h *InsightsHandler) BrowsingPattern(c echo.Context) error {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session_id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	entries, err := h.signalService.BrowsingPattern(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load browsing pattern", "session_id", sessionID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(entries))
}

func (h *InsightsHandler) TrendingViews(c echo.Context) error {
	days := queryInt(c, "days", 7)
	limit := queryInt(c, "n", 10)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ids, err := h.signalService.TrendingProductIDs(ctx, days, limit)
	if err != nil {
		logger.Error("Failed to compute trending views", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ids))
}

func (h *InsightsHandler) MostViewed(c echo.Context) error {
	days := queryInt(c, "days", 7)
	limit := queryInt(c, "n", 10)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ids, err := h.signalService.MostViewed(ctx, days, limit)
	if err != nil {
		logger.Error("Failed to compute most viewed products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ids))
}

func (h *InsightsHandler) HighConversion(c echo.Context) error {
	limit := queryInt(c, "n", 10)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ids, err := h.signalService.HighConversion(ctx, limit)
	if err != nil {
		logger.Error("Failed to compute high conversion products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ids))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
