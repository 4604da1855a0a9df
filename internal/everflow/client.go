package everflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/everflow-dashboard/internal/pkg/httpretry"
	"github.com/ignite/everflow-dashboard/internal/pkg/logger"
)

const (
	networkPrefix   = "/v1/networks/"
	affiliatePrefix = "/v1/affiliates/"

	// API max for paged reporting endpoints
	conversionsPageSize = 50
	maxConversionPages  = 100
)

// APIError is a non-2xx response from the Everflow API. The body is kept
// verbatim so handlers can surface the upstream message.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("everflow: API error (status %d): %s", e.StatusCode, e.Body)
}

// Client is the Everflow API client
type Client struct {
	baseURL             string
	apiKey              string
	timezoneID          int
	reportingTimezoneID int
	currencyID          string
	httpClient          httpretry.HTTPDoer
}

// NewClient creates a new Everflow API client
func NewClient(config Config) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:             strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:              config.APIKey,
		timezoneID:          config.TimezoneID,
		reportingTimezoneID: config.ReportingTimezoneID,
		currencyID:          config.CurrencyID,
		httpClient:          httpretry.New(&http.Client{Timeout: timeout}, 3),
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client httpretry.HTTPDoer) {
	c.httpClient = client
}

// HasCredentials reports whether the client is configured to reach the
// real API. Without a key every fetch is skipped and callers fall back
// to sample data.
func (c *Client) HasCredentials() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// doRequest performs an authenticated request against the Everflow API.
// Non-2xx responses are returned as *APIError with the body preserved.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Eflow-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}

// endpointCandidate is one attempt in a fallback chain. Everflow exposes
// overlapping network-side and affiliate-side endpoints and not every
// account has access to all of them, so some resources are fetched by
// trying candidates in order until one succeeds.
type endpointCandidate struct {
	method string
	path   string
	body   interface{}
}

// doFirst tries each candidate in order and returns the first successful
// body. The last error wins when every candidate fails.
func (c *Client) doFirst(ctx context.Context, candidates []endpointCandidate) ([]byte, error) {
	var lastErr error
	for _, cand := range candidates {
		respBody, err := c.doRequest(ctx, cand.method, cand.path, cand.body)
		if err == nil {
			return respBody, nil
		}
		logger.Debug("endpoint candidate failed", "path", cand.path, "error", err)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no endpoint candidates configured")
	}
	return nil, lastErr
}

// GetOffers retrieves network offers via the offerstable endpoint
func (c *Client) GetOffers(ctx context.Context, opts TableOptions) (*OffersResponse, error) {
	body := buildTableBody(defaultOfferFilters(), opts)
	path := networkPrefix + "offerstable" + tableQuery(opts, "ruleset,reporting")

	respBody, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var response OffersResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse offers response: %w", err)
	}
	return &response, nil
}

// GetAffiliateOffers retrieves offers from the affiliate-side API.
// offerType selects between runnable offers and the full catalog.
func (c *Client) GetAffiliateOffers(ctx context.Context, offerType string, opts TableOptions) (*OffersResponse, error) {
	endpoint := "offersrunnable"
	if offerType == OfferTypeAll {
		endpoint = "alloffers"
	}
	path := affiliatePrefix + endpoint + tableQuery(opts, "ruleset,payouts,remaining_caps,reporting,creatives")

	respBody, err := c.doRequest(ctx, http.MethodPost, path, buildTableBody(nil, opts))
	if err != nil {
		return nil, err
	}

	var response OffersResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse affiliate offers response: %w", err)
	}
	return &response, nil
}

// GetAffiliates retrieves affiliates via the affiliatestable endpoint
func (c *Client) GetAffiliates(ctx context.Context, opts TableOptions) (*AffiliatesResponse, error) {
	body := buildTableBody(defaultAffiliateFilters(), opts)
	path := networkPrefix + "affiliatestable" + tableQuery(opts, "reporting")

	respBody, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var response AffiliatesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse affiliates response: %w", err)
	}
	return &response, nil
}

// GetAdvertisers retrieves the advertiser list. Some accounts return an
// object with an advertisers key, others return a bare array.
func (c *Client) GetAdvertisers(ctx context.Context) (*AdvertisersResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, networkPrefix+"advertisers", nil)
	if err != nil {
		return nil, err
	}

	var response AdvertisersResponse
	if err := json.Unmarshal(respBody, &response); err == nil && response.Advertisers != nil {
		return &response, nil
	}

	var direct []RawAdvertiser
	if err := json.Unmarshal(respBody, &direct); err != nil {
		return nil, fmt.Errorf("failed to parse advertisers response: %w", err)
	}
	return &AdvertisersResponse{
		Advertisers: direct,
		Paging:      &Paging{Page: 1, PageSize: len(direct), TotalCount: len(direct)},
	}, nil
}

// GetDeals retrieves advertiser deals, preferring the network table
// endpoint and falling back to the affiliate-side listing.
func (c *Client) GetDeals(ctx context.Context, opts TableOptions) (*DealsResponse, error) {
	respBody, err := c.doFirst(ctx, []endpointCandidate{
		{http.MethodPost, networkPrefix + "dealstable" + tableQuery(opts, ""), buildTableBody(nil, opts)},
		{http.MethodGet, affiliatePrefix + "advertiserdeals" + tableQuery(opts, "deal_products,offers"), nil},
	})
	if err != nil {
		return nil, err
	}

	var response DealsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse deals response: %w", err)
	}
	return &response, nil
}

// GetCouponCodes retrieves coupon codes, preferring the network table
// endpoint and falling back to the affiliate-side listing.
func (c *Client) GetCouponCodes(ctx context.Context, opts TableOptions) (*CouponCodesResponse, error) {
	respBody, err := c.doFirst(ctx, []endpointCandidate{
		{http.MethodPost, networkPrefix + "couponcodestable" + tableQuery(opts, "offer"), buildTableBody(nil, opts)},
		{http.MethodGet, affiliatePrefix + "couponcodes" + tableQuery(opts, "offer"), nil},
	})
	if err != nil {
		return nil, err
	}

	var response CouponCodesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse coupon codes response: %w", err)
	}
	return &response, nil
}

// GetTrafficControls retrieves affiliate traffic controls
func (c *Client) GetTrafficControls(ctx context.Context) (*TrafficControlsResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, affiliatePrefix+"trafficcontrols", nil)
	if err != nil {
		return nil, err
	}

	var response TrafficControlsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse traffic controls response: %w", err)
	}
	return &response, nil
}

// GetBlockedSources retrieves blocked offer sources
func (c *Client) GetBlockedSources(ctx context.Context) (*BlockedSourcesResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, affiliatePrefix+"trafficblocking/blockedsources", nil)
	if err != nil {
		return nil, err
	}

	var response BlockedSourcesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse blocked sources response: %w", err)
	}
	return &response, nil
}

// GetBlockedVariables retrieves blocked tracking variables
func (c *Client) GetBlockedVariables(ctx context.Context) (*BlockedVariablesResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, affiliatePrefix+"trafficblocking/blockedvariables", nil)
	if err != nil {
		return nil, err
	}

	var response BlockedVariablesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse blocked variables response: %w", err)
	}
	return &response, nil
}

// GetConversions retrieves conversion rows for a date range, paging
// through the reporting endpoint until the range is exhausted.
func (c *Client) GetConversions(ctx context.Context, from, to string, filters []Filter) ([]ConversionRecord, error) {
	if filters == nil {
		filters = []Filter{}
	}

	request := ConversionsRequest{
		TimezoneID:      c.timezoneID,
		CurrencyID:      c.currencyID,
		From:            from,
		To:              to,
		ShowEvents:      true,
		ShowConversions: true,
		Query: ConversionsQuery{
			Filters:     filters,
			SearchTerms: []string{},
		},
	}

	var all []ConversionRecord
	page := 1

	for {
		path := fmt.Sprintf("%sreporting/conversions?page=%d&page_size=%d", networkPrefix, page, conversionsPageSize)
		respBody, err := c.doRequest(ctx, http.MethodPost, path, request)
		if err != nil {
			return nil, err
		}

		var response ConversionsResponse
		if err := json.Unmarshal(respBody, &response); err != nil {
			return nil, fmt.Errorf("failed to parse conversions response: %w", err)
		}

		all = append(all, response.Conversions...)

		if response.Paging == nil || len(response.Conversions) < conversionsPageSize ||
			(page*conversionsPageSize) >= response.Paging.TotalCount {
			break
		}
		page++

		if page > maxConversionPages {
			break
		}
	}

	return all, nil
}

// GetEntityReport retrieves the aggregated reporting table grouped by
// the given columns, e.g. "offer", "affiliate", "date".
func (c *Client) GetEntityReport(ctx context.Context, from, to string, columns []string, filters []Filter) (*EntityTableResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, networkPrefix+"reporting/entity", c.entityRequest(from, to, columns, filters))
	if err != nil {
		return nil, err
	}

	var response EntityTableResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse entity report response: %w", err)
	}
	return &response, nil
}

// ExportEntityReport requests a report export and returns the raw payload
// (CSV or JSON depending on format).
func (c *Client) ExportEntityReport(ctx context.Context, from, to string, columns []string, filters []Filter, format string) ([]byte, error) {
	request := c.entityRequest(from, to, columns, filters)
	request.Format = format
	return c.doRequest(ctx, http.MethodPost, networkPrefix+"reporting/entity/table/export", request)
}

func (c *Client) entityRequest(from, to string, columns []string, filters []Filter) EntityReportRequest {
	cols := make([]EntityReportColumn, 0, len(columns))
	for _, col := range columns {
		cols = append(cols, EntityReportColumn{Column: col})
	}
	if filters == nil {
		filters = []Filter{}
	}
	return EntityReportRequest{
		TimezoneID: c.reportingTimezoneID,
		CurrencyID: c.currencyID,
		From:       from,
		To:         to,
		Columns:    cols,
		Query:      EntityReportQuery{Filters: filters},
	}
}

// Ping performs a minimal authenticated call to verify connectivity
func (c *Client) Ping(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	_, err := c.GetEntityReport(ctx, today, today, []string{"date"}, nil)
	return err
}
