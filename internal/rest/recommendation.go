package rest

import (
	"context"
	"net/http"
	"time"

	"pesqueriaOutfitters/business/recommendation"
	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"
	"pesqueriaOutfitters/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate   *validator.Validate
		recService RecommendationService
		timeout    time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, strategy string, productID uint64, userID uint, limit int) ([]domain.Recommendation, error)
	}

	RecommendQuery struct {
		Strategy  string `query:"strategy" validate:"required,oneof=similar personalized trending frequently-bought"`
		ProductID uint64 `query:"product_id"`
		N         int    `query:"n"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:   validator.New(),
		recService: svc,
		timeout:    10 * time.Second,
	}
}

// Recommend serves GET /api/v1/recommendations. The strategies that need an
// anchor product require product_id; personalized and trending ignore it.
// Identity comes from OptionalAuth, so anonymous requests are fine.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if (q.Strategy == recommendation.StrategySimilar || q.Strategy == recommendation.StrategyBoughtWith) && q.ProductID == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "product_id is required for strategy " + q.Strategy})
	}

	userID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	metrics.RecommendRequests.WithLabelValues(q.Strategy).Inc()
	started := time.Now()

	recs, err := h.recService.Recommend(ctx, q.Strategy, q.ProductID, userID, q.N)
	if err != nil {
		logger.Error("Failed to build recommendations", "strategy", q.Strategy, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "failed to build recommendations",
		})
	}

	metrics.RecommendLatency.Observe(time.Since(started).Seconds())
	if len(recs) == 0 {
		metrics.RecommendEmptyResults.WithLabelValues(q.Strategy).Inc()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":         true,
		"recommendations": recs,
		"count":           len(recs),
	})
}
