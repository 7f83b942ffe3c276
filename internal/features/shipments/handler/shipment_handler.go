package handler

import (
	"net/http"

	"shipment-sync/internal/core/logger"
	"shipment-sync/internal/features/shipments/domain"
	"shipment-sync/internal/features/shipments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
	}
}

// SearchResponse is the search endpoint's success payload.
type SearchResponse struct {
	// Results contains the matching tracking records.
	Results []domain.TrackingRecord `json:"results"`
	// Count is the number of results returned.
	Count int `json:"count"`
}

// Search handles GET /shipments/search.
// @Summary Search tracking records
// @Description Searches persisted tracking records with optional filters. String filters accept a leading ! to negate.
// @Tags Shipments
// @Produce json
// @Param tracking_number query string false "Substring match on tracking number"
// @Param order_number query string false "Substring match on order number"
// @Param status query string false "Exact match on status"
// @Param created_after query string false "Inclusive lower bound on created_at"
// @Param created_before query string false "Inclusive upper bound on created_at"
// @Success 200 {object} SearchResponse
// @Failure 500 {object} map[string]string
// @Router /shipments/search [get]
func (h *ShipmentHandler) Search(c *fiber.Ctx) error {
	filters := domain.SearchFilters{
		TrackingNumber: c.Query("tracking_number"),
		OrderNumber:    c.Query("order_number"),
		Status:         c.Query("status"),
		CreatedAfter:   c.Query("created_after"),
		CreatedBefore:  c.Query("created_before"),
	}

	records, err := h.service.Search(c.Context(), filters)
	if err != nil {
		logger.Get().Error("Search failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "search failed",
		})
	}

	if records == nil {
		records = []domain.TrackingRecord{}
	}

	return c.Status(http.StatusOK).JSON(SearchResponse{
		Results: records,
		Count:   len(records),
	})
}

// TrackingURLs handles GET /shipments/tracking-urls.
// @Summary Get batched carrier tracking URLs
// @Description Renders carrier tracking URLs for all non-delivered shipments, batched by tracking number.
// @Tags Shipments
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string
// @Router /shipments/tracking-urls [get]
func (h *ShipmentHandler) TrackingURLs(c *fiber.Ctx) error {
	urls, err := h.service.TrackingURLs(c.Context())
	if err != nil {
		logger.Get().Error("Failed to generate tracking URLs", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate tracking urls",
		})
	}

	if urls == nil {
		urls = []string{}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"urls": urls,
	})
}

// UpdateStatuses handles POST /shipments/status.
// @Summary Apply bulk status updates
// @Description Applies a batch of status updates keyed by tracking number. Unknown tracking numbers are ignored.
// @Tags Shipments
// @Accept json
// @Produce json
// @Param updates body []domain.StatusUpdate true "Status updates"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /shipments/status [post]
func (h *ShipmentHandler) UpdateStatuses(c *fiber.Ctx) error {
	var updates []domain.StatusUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.ReconcileStatuses(c.Context(), updates); err != nil {
		logger.Get().Error("Status update failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "status update failed",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// Sync handles POST /shipments/sync.
// @Summary Trigger a shipment sync
// @Description Fetches recent shipments from the carrier API and persists the new ones. Also runs on the configured schedule.
// @Tags Shipments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /shipments/sync [post]
func (h *ShipmentHandler) Sync(c *fiber.Ctx) error {
	count, err := h.service.Sync(c.Context())
	if err != nil {
		logger.Get().Error("Manual sync failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "sync failed",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}
