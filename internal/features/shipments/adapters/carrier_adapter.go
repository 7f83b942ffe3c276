package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shipment-sync/internal/core/config"
	"shipment-sync/internal/core/httpclient"
	"shipment-sync/internal/core/logger"
	"shipment-sync/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// shipDateLayout is the date format the carrier listing endpoint expects.
const shipDateLayout = "2006-01-02"

// CarrierAPIAdapter implements the ShipmentSource port against the carrier's
// paginated REST listing.
type CarrierAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the carrier connection details.
	config config.CarrierConfig
}

// NewCarrierAPIAdapter creates a new CarrierAPIAdapter. A nil client falls
// back to the default logging client.
func NewCarrierAPIAdapter(cfg config.CarrierConfig, client *http.Client) *CarrierAPIAdapter {
	if client == nil {
		client = httpclient.NewClient(30 * time.Second)
	}
	return &CarrierAPIAdapter{
		client: client,
		config: cfg,
	}
}

// shipmentListResponse represents one page of the carrier shipments listing.
// Shipments is a pointer so a missing field can be told apart from an empty page.
type shipmentListResponse struct {
	// Shipments holds the page's shipment entries.
	Shipments *[]shipmentEntry `json:"shipments"`
	// Total is the total number of shipments across all pages.
	Total int `json:"total"`
	// Page is the current page number.
	Page int `json:"page"`
	// Pages is the total page count declared by the first response.
	Pages int `json:"pages"`
}

// shipmentEntry is one shipment record in the carrier response.
type shipmentEntry struct {
	// TrackingNumber is the carrier tracking identifier.
	TrackingNumber string `json:"trackingNumber"`
	// OrderNumber is the order reference attached to the shipment.
	OrderNumber string `json:"orderNumber"`
}

// FetchShipmentsSince retrieves every page of shipments shipped on or after
// cutoff. Pages are fetched sequentially in order; any non-success page or
// malformed page aborts the whole fetch. The basic-auth credential is
// computed once per invocation.
func (a *CarrierAPIAdapter) FetchShipmentsSince(ctx context.Context, cutoff time.Time) ([]domain.ShipmentFetchResult, error) {
	auth := a.basicAuth()
	shipDate := cutoff.Format(shipDateLayout)

	first, err := a.fetchPage(ctx, auth, shipDate, 1)
	if err != nil {
		return nil, err
	}

	all := appendShipments(nil, *first.Shipments)

	for page := 2; page <= first.Pages; page++ {
		resp, err := a.fetchPage(ctx, auth, shipDate, page)
		if err != nil {
			return nil, err
		}
		all = appendShipments(all, *resp.Shipments)
	}

	logger.Get().Debug("Carrier fetch completed",
		zap.String("ship_date_start", shipDate),
		zap.Int("pages", first.Pages),
		zap.Int("shipments", len(all)),
	)

	return all, nil
}

// HealthCheck verifies that the carrier API is reachable and credentials are valid.
func (a *CarrierAPIAdapter) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/shipments?page=1&pageSize=1", a.config.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	req.Header.Add("Authorization", a.basicAuth())

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// fetchPage retrieves and validates a single page of the shipments listing.
func (a *CarrierAPIAdapter) fetchPage(ctx context.Context, auth, shipDate string, page int) (*shipmentListResponse, error) {
	url := fmt.Sprintf("%s/shipments?shipDateStart=%s&page=%d", a.config.URL, shipDate, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Authorization", auth)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier API returned status %d on page %d: %s", resp.StatusCode, page, string(body))
	}

	var listResp shipmentListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
	}

	if listResp.Shipments == nil {
		return nil, fmt.Errorf("malformed carrier response on page %d: missing shipments field", page)
	}

	return &listResp, nil
}

// basicAuth builds the Authorization header value from the configured credentials.
func (a *CarrierAPIAdapter) basicAuth() string {
	authVal := make([]byte, 0, len(a.config.APIKey)+len(a.config.APISecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", a.config.APIKey, a.config.APISecret)

	return "Basic " + base64.StdEncoding.EncodeToString(authVal)
}

// appendShipments maps carrier entries onto the domain value and appends them.
func appendShipments(dst []domain.ShipmentFetchResult, entries []shipmentEntry) []domain.ShipmentFetchResult {
	for _, e := range entries {
		dst = append(dst, domain.ShipmentFetchResult{
			TrackingNumber: e.TrackingNumber,
			OrderNumber:    e.OrderNumber,
		})
	}
	return dst
}
