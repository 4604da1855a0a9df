package everflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(serverURL string) *Client {
	client := NewClient(Config{
		APIKey:              "test-api-key",
		BaseURL:             serverURL,
		TimezoneID:          67,
		ReportingTimezoneID: 90,
		CurrencyID:          "USD",
	})
	client.SetHTTPClient(http.DefaultClient)
	return client
}

func TestHasCredentials(t *testing.T) {
	if !newTestClient("http://example.com").HasCredentials() {
		t.Error("configured client must report credentials")
	}
	if NewClient(Config{BaseURL: "http://example.com"}).HasCredentials() {
		t.Error("missing API key must report no credentials")
	}
}

func TestGetOffers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Eflow-API-Key") != "test-api-key" {
			t.Error("missing X-Eflow-API-Key header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("missing Content-Type header")
		}
		if r.URL.Path != "/v1/networks/offerstable" {
			t.Errorf("path = %s", r.URL.Path)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		filters, ok := body["filters"].(map[string]interface{})
		if !ok {
			t.Fatal("body missing filters")
		}
		if filters["offer_status"] != "active" {
			t.Errorf("offer_status filter = %v", filters["offer_status"])
		}

		json.NewEncoder(w).Encode(OffersResponse{
			Offers: []RawOffer{{NetworkOfferID: 1, Name: "Test"}},
			Paging: &Paging{Page: 1, PageSize: 50, TotalCount: 1},
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetOffers(context.Background(), TableOptions{})
	if err != nil {
		t.Fatalf("GetOffers: %v", err)
	}
	if len(resp.Offers) != 1 || resp.Offers[0].Name != "Test" {
		t.Errorf("offers = %+v", resp.Offers)
	}
}

func TestGetOffersFilterOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		filters := body["filters"].(map[string]interface{})
		if filters["offer_status"] != "paused" {
			t.Errorf("caller filter must win, got %v", filters["offer_status"])
		}
		json.NewEncoder(w).Encode(OffersResponse{})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetOffers(context.Background(), TableOptions{
		Filters: []FieldFilter{{Field: "offer_status", Value: "paused"}},
	})
	if err != nil {
		t.Fatalf("GetOffers: %v", err)
	}
}

func TestGetAdvertisersArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]RawAdvertiser{
			{NetworkAdvertiserID: 1, Name: "Direct Array"},
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetAdvertisers(context.Background())
	if err != nil {
		t.Fatalf("GetAdvertisers: %v", err)
	}
	if len(resp.Advertisers) != 1 || resp.Advertisers[0].Name != "Direct Array" {
		t.Errorf("advertisers = %+v", resp.Advertisers)
	}
	if resp.Paging == nil || resp.Paging.TotalCount != 1 {
		t.Errorf("paging = %+v", resp.Paging)
	}
}

func TestGetConversionsPagination(t *testing.T) {
	pagesServed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		page := r.URL.Query().Get("page")

		var req ConversionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.TimezoneID != 67 {
			t.Errorf("timezone_id = %d, want 67", req.TimezoneID)
		}
		if req.From != "2026-08-01" || req.To != "2026-08-07" {
			t.Errorf("range = %s..%s", req.From, req.To)
		}

		conversions := make([]ConversionRecord, 0, conversionsPageSize)
		count := conversionsPageSize
		if page == "2" {
			count = 10
		}
		for i := 0; i < count; i++ {
			conversions = append(conversions, ConversionRecord{
				ConversionID: fmt.Sprintf("cv-%s-%d", page, i),
			})
		}
		json.NewEncoder(w).Encode(ConversionsResponse{
			Conversions: conversions,
			Paging:      &Paging{Page: 1, PageSize: conversionsPageSize, TotalCount: 60},
		})
	}))
	defer server.Close()

	conversions, err := newTestClient(server.URL).GetConversions(context.Background(), "2026-08-01", "2026-08-07", nil)
	if err != nil {
		t.Fatalf("GetConversions: %v", err)
	}
	if pagesServed != 2 {
		t.Errorf("served %d pages, want 2", pagesServed)
	}
	if len(conversions) != 60 {
		t.Errorf("got %d conversions, want 60", len(conversions))
	}
}

func TestGetEntityReportTimezone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EntityReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.TimezoneID != 90 {
			t.Errorf("entity report timezone_id = %d, want 90", req.TimezoneID)
		}
		if len(req.Columns) != 1 || req.Columns[0].Column != "offer" {
			t.Errorf("columns = %+v", req.Columns)
		}
		json.NewEncoder(w).Encode(EntityTableResponse{
			Table:   []EntityRow{{}},
			Summary: &EntitySummary{Revenue: 100},
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetEntityReport(context.Background(), "2026-08-01", "2026-08-07", []string{"offer"}, nil)
	if err != nil {
		t.Fatalf("GetEntityReport: %v", err)
	}
	if resp.Summary == nil || resp.Summary.Revenue != 100 {
		t.Errorf("summary = %+v", resp.Summary)
	}
}

func TestExportEntityReportPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/networks/reporting/entity/table/export" {
			t.Errorf("export path = %s", r.URL.Path)
		}
		var req EntityReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Format != "csv" {
			t.Errorf("format = %q, want csv", req.Format)
		}
		w.Write([]byte("offer,clicks\n"))
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).ExportEntityReport(context.Background(), "2026-08-01", "2026-08-07", []string{"offer"}, nil, "csv")
	if err != nil {
		t.Fatalf("ExportEntityReport: %v", err)
	}
	if string(payload) != "offer,clicks\n" {
		t.Errorf("payload = %q", payload)
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetOffers(context.Background(), TableOptions{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Body != `{"message":"invalid key"}` {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestGetDealsFallbackChain(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/v1/networks/dealstable" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(DealsResponse{
			Deals: []RawDeal{{NetworkAdvertiserDealID: 1, Name: "Fallback Deal"}},
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GetDeals(context.Background(), TableOptions{})
	if err != nil {
		t.Fatalf("GetDeals: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want network then affiliate candidate", paths)
	}
	if paths[1] != "/v1/affiliates/advertiserdeals" {
		t.Errorf("fallback path = %s", paths[1])
	}
	if len(resp.Deals) != 1 || resp.Deals[0].Name != "Fallback Deal" {
		t.Errorf("deals = %+v", resp.Deals)
	}
}
