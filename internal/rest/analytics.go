package rest

import (
	"context"
	"net/http"
	"time"

	"pesqueriaOutfitters/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	AnalyticsHandler struct {
		validate       *validator.Validate
		trackerService TrackerService
		timeout        time.Duration
	}

	TrackerService interface {
		Record(ctx context.Context, event domain.AnalyticsEvent) (string, error)
	}

	TrackRequest struct {
		EventType string                 `json:"event_type" validate:"required,oneof=PRODUCT_VIEW ADD_TO_CART PURCHASE"`
		SessionID string                 `json:"session_id" validate:"required"`
		ProductID uint64                 `json:"product_id"`
		VariantID uint64                 `json:"variant_id"`
		Metadata  map[string]interface{} `json:"metadata"`
	}
)

func NewAnalyticsHandler(svc TrackerService) *AnalyticsHandler {
	return &AnalyticsHandler{
		validate:       validator.New(),
		trackerService: svc,
		timeout:        10 * time.Second,
	}
}

// Track serves POST /api/v1/analytics/track. Only malformed payloads get a
// 400; once an event passes validation the response is 201 even when the
// write behind it failed, so a flaky store never breaks storefront pages.
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, _ := c.Get("user_id").(uint)

	event := domain.AnalyticsEvent{
		EventType: req.EventType,
		SessionID: req.SessionID,
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Metadata:  datatypes.JSONMap(req.Metadata),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	eventID, err := h.trackerService.Record(ctx, event)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"event_id": eventID,
	}))
}
