package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/everflow-dashboard/internal/config"
	"github.com/ignite/everflow-dashboard/internal/everflow"
	"github.com/ignite/everflow-dashboard/internal/pkg/logger"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	client *everflow.Client
	config *config.Config
	logger *log.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(client *everflow.Client, cfg *config.Config) *Handlers {
	return &Handlers{
		client: client,
		config: cfg,
		logger: log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
}

// envelope is the uniform response shape for every dashboard endpoint
type envelope struct {
	Success       bool        `json:"success"`
	Data          interface{} `json:"data,omitempty"`
	Paging        interface{} `json:"paging,omitempty"`
	UsingMockData bool        `json:"usingMockData,omitempty"`
	APIError      string      `json:"apiError,omitempty"`
	Error         string      `json:"error,omitempty"`
	RequestID     string      `json:"requestId"`
	Timestamp     string      `json:"timestamp"`
}

func newEnvelope() envelope {
	return envelope{
		Success:   true,
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[api] failed to encode response: %v", err)
	}
}

// respondData writes a successful envelope around data
func respondData(w http.ResponseWriter, data interface{}) {
	env := newEnvelope()
	env.Data = data
	respondJSON(w, http.StatusOK, env)
}

// respondResult writes a fallback-resolved dataset. The status is always
// 200: a mock-backed response is still a successful response.
func respondResult[T any](w http.ResponseWriter, res everflow.Result[T]) {
	env := newEnvelope()
	env.Data = res.Data
	env.Paging = res.Paging
	env.UsingMockData = res.UsingMockData
	env.APIError = res.APIError
	respondJSON(w, http.StatusOK, env)
}

// respondError writes a failure envelope
func respondError(w http.ResponseWriter, status int, message string) {
	env := newEnvelope()
	env.Success = false
	env.Error = message
	respondJSON(w, status, env)
}

// tableRequest is the POST body accepted by listing endpoints
type tableRequest struct {
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
	Search   string                 `json:"search"`
	Filters  []everflow.FieldFilter `json:"filters"`
}

// parseTableOptions reads listing options from the body (POST) or the
// query string (GET). A missing or malformed body means defaults, not an
// error: the dashboard issues bare POSTs for first-page loads.
func parseTableOptions(r *http.Request) everflow.TableOptions {
	var req tableRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	q := r.URL.Query()
	if req.Page == 0 {
		req.Page = intQuery(q.Get("page"))
	}
	if req.PageSize == 0 {
		req.PageSize = intQuery(q.Get("page_size"))
	}
	if req.Search == "" {
		req.Search = q.Get("search")
	}

	return everflow.TableOptions{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Filters:  req.Filters,
	}
}

func intQuery(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// dateRange is a validated from/to pair in YYYY-MM-DD form
type dateRange struct {
	From string
	To   string
}

// parseDateRange validates the from/to parameters shared by the
// reporting endpoints. Both are required and must be calendar dates.
func parseDateRange(from, to string) (dateRange, string) {
	if from == "" || to == "" {
		return dateRange{}, "from and to dates are required (YYYY-MM-DD)"
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return dateRange{}, "invalid from date, expected YYYY-MM-DD"
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return dateRange{}, "invalid to date, expected YYYY-MM-DD"
	}
	if end.Before(start) {
		return dateRange{}, "to date must not be before from date"
	}
	return dateRange{From: from, To: to}, ""
}

// HealthCheck reports service liveness
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"service":    "everflow-dashboard",
		"configured": h.client.HasCredentials(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// TestConnection verifies upstream connectivity with a minimal call and
// reports a diagnostic instead of failing the request
func (h *Handlers) TestConnection(w http.ResponseWriter, r *http.Request) {
	env := newEnvelope()

	if !h.client.HasCredentials() {
		env.Data = map[string]interface{}{
			"configured": false,
			"connected":  false,
			"message":    "no API key configured, endpoints will serve sample data",
		}
		respondJSON(w, http.StatusOK, env)
		return
	}

	maskedKey := logger.RedactSecret(h.config.Everflow.APIKey)

	if err := h.client.Ping(r.Context()); err != nil {
		h.logger.Printf("connectivity test failed: %v", err)
		env.Data = map[string]interface{}{
			"configured": true,
			"connected":  false,
			"apiKey":     maskedKey,
			"message":    err.Error(),
		}
		respondJSON(w, http.StatusOK, env)
		return
	}

	env.Data = map[string]interface{}{
		"configured": true,
		"connected":  true,
		"apiKey":     maskedKey,
		"message":    "Everflow API reachable",
	}
	respondJSON(w, http.StatusOK, env)
}
