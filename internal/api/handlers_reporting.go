package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ignite/everflow-dashboard/internal/everflow"
)

// conversionsRequest is the POST body for the conversions endpoint
type conversionsRequest struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Filters []everflow.Filter `json:"filters"`
}

// Conversions serves raw conversion rows for a date range
func (h *Handlers) Conversions(w http.ResponseWriter, r *http.Request) {
	var req conversionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rng, msg := parseDateRange(req.From, req.To)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), everflow.MockConversions(),
		func(ctx context.Context) ([]everflow.ConversionRecord, *everflow.Paging, error) {
			conversions, err := h.client.GetConversions(ctx, rng.From, rng.To, req.Filters)
			if err != nil {
				h.logger.Printf("conversions fetch failed: %v", err)
				return nil, nil, err
			}
			return conversions, nil, nil
		})

	respondResult(w, res)
}

// profitsRequest is the POST body for the profits endpoint
type profitsRequest struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	GroupBy string            `json:"group_by"`
	Limit   int               `json:"limit"`
	Filters []everflow.Filter `json:"filters"`
}

// Profits serves the profit leaderboard grouped by offer or affiliate.
// Profit per group is recomputed from conversion revenue and payout.
func (h *Handlers) Profits(w http.ResponseWriter, r *http.Request) {
	var req profitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rng, msg := parseDateRange(req.From, req.To)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = everflow.GroupByOffer
	}
	if groupBy != everflow.GroupByOffer && groupBy != everflow.GroupByAffiliate {
		respondError(w, http.StatusBadRequest, "group_by must be offer or affiliate")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	mock := everflow.MockOfferProfits()
	if groupBy == everflow.GroupByAffiliate {
		mock = everflow.MockAffiliateProfits()
	}
	if len(mock) > limit {
		mock = mock[:limit]
	}

	// Profit is only counted on approved conversions; pending and
	// rejected rows would overstate it
	filters := append([]everflow.Filter{
		{ResourceType: "status", FilterIDValue: "approved"},
	}, req.Filters...)

	res := everflow.Resolve(r.Context(), h.client.HasCredentials(), mock,
		func(ctx context.Context) ([]everflow.ProfitRecord, *everflow.Paging, error) {
			conversions, err := h.client.GetConversions(ctx, rng.From, rng.To, filters)
			if err != nil {
				h.logger.Printf("profit conversions fetch failed: %v", err)
				return nil, nil, err
			}
			return everflow.AggregateProfit(conversions, groupBy, limit), nil, nil
		})

	respondResult(w, res)
}

// reportingRequest is the POST body for the reporting endpoints
type reportingRequest struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Columns []string          `json:"columns"`
	Filters []everflow.Filter `json:"filters"`
	Format  string            `json:"format"`
}

// reportingData is the payload served by the reporting endpoint
type reportingData struct {
	Rows    []everflow.ReportingRow   `json:"rows"`
	Summary everflow.ReportingMetrics `json:"summary"`
}

// Reporting serves the flattened entity report for a date range
func (h *Handlers) Reporting(w http.ResponseWriter, r *http.Request) {
	var req reportingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rng, msg := parseDateRange(req.From, req.To)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = []string{"offer"}
	}

	env := newEnvelope()

	if !h.client.HasCredentials() {
		env.Data = mockReportingData()
		env.UsingMockData = true
		respondJSON(w, http.StatusOK, env)
		return
	}

	resp, err := h.client.GetEntityReport(r.Context(), rng.From, rng.To, columns, req.Filters)
	if err != nil {
		h.logger.Printf("entity report fetch failed: %v", err)
		env.Data = mockReportingData()
		env.UsingMockData = true
		env.APIError = err.Error()
		respondJSON(w, http.StatusOK, env)
		return
	}

	env.Data = reportingData{
		Rows:    everflow.TransformEntityTable(resp),
		Summary: everflow.TransformEntitySummary(resp.Summary),
	}
	respondJSON(w, http.StatusOK, env)
}

// ReportingExport proxies a report export. Export has no mock fallback:
// a file download either succeeds or fails visibly.
func (h *Handlers) ReportingExport(w http.ResponseWriter, r *http.Request) {
	var req reportingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rng, msg := parseDateRange(req.From, req.To)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if !h.client.HasCredentials() {
		respondError(w, http.StatusServiceUnavailable, "export requires a configured API key")
		return
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = []string{"offer"}
	}
	format := req.Format
	if format == "" {
		format = "csv"
	}

	payload, err := h.client.ExportEntityReport(r.Context(), rng.From, rng.To, columns, req.Filters, format)
	if err != nil {
		h.logger.Printf("report export failed: %v", err)
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func mockReportingData() reportingData {
	rows := everflow.MockReportingRows()

	var summary everflow.ReportingMetrics
	for _, row := range rows {
		summary.TotalClicks += row.TotalClicks
		summary.UniqueClicks += row.UniqueClicks
		summary.Conversions += row.Conversions
		summary.Payout += row.Payout
		summary.Revenue += row.Revenue
		summary.Profit += row.Profit
		summary.Impressions += row.Impressions
	}
	summary.ConversionRate = "0.00"
	if summary.TotalClicks > 0 {
		summary.ConversionRate = everflow.Ratio(float64(summary.Conversions)*100, float64(summary.TotalClicks))
	}

	return reportingData{Rows: rows, Summary: summary}
}

// DashboardSummary serves the landing page KPI block. Current and prior
// period conversions are fetched concurrently; defaults cover the last
// seven days against the seven before.
func (h *Handlers) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")

	now := time.Now().UTC()
	if from == "" || to == "" {
		to = now.Format("2006-01-02")
		from = now.AddDate(0, 0, -6).Format("2006-01-02")
	}

	rng, msg := parseDateRange(from, to)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	env := newEnvelope()

	if !h.client.HasCredentials() {
		env.Data = everflow.MockDashboardSummary()
		env.UsingMockData = true
		respondJSON(w, http.StatusOK, env)
		return
	}

	start, _ := time.Parse("2006-01-02", rng.From)
	end, _ := time.Parse("2006-01-02", rng.To)
	span := int(end.Sub(start).Hours()/24) + 1
	prevFrom := start.AddDate(0, 0, -span).Format("2006-01-02")
	prevTo := start.AddDate(0, 0, -1).Format("2006-01-02")

	var current, previous []everflow.ConversionRecord

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		current, err = h.client.GetConversions(ctx, rng.From, rng.To, nil)
		return err
	})
	g.Go(func() (err error) {
		previous, err = h.client.GetConversions(ctx, prevFrom, prevTo, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.Printf("dashboard summary fetch failed: %v", err)
		env.Data = everflow.MockDashboardSummary()
		env.UsingMockData = true
		env.APIError = err.Error()
		respondJSON(w, http.StatusOK, env)
		return
	}

	if len(current) == 0 && len(previous) == 0 {
		env.Data = everflow.MockDashboardSummary()
		env.UsingMockData = true
		respondJSON(w, http.StatusOK, env)
		return
	}

	env.Data = everflow.BuildDashboardSummary(current, previous)
	respondJSON(w, http.StatusOK, env)
}
