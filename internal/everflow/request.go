package everflow

import (
	"net/url"
	"strconv"
	"strings"
)

// Affiliate offer catalog selectors
const (
	OfferTypeRunnable = "runnable"
	OfferTypeAll      = "all"
)

// Filter is the {resource_type, filter_id_value} pair Everflow uses in
// reporting query bodies
type Filter struct {
	ResourceType  string `json:"resource_type"`
	FilterIDValue string `json:"filter_id_value"`
}

// FieldFilter is a caller-supplied filter for table endpoints
type FieldFilter struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// TableOptions are the common knobs for listing endpoints
type TableOptions struct {
	Page     int
	PageSize int
	Search   string
	Filters  []FieldFilter
}

// ConversionsRequest is the POST body for reporting/conversions
type ConversionsRequest struct {
	TimezoneID      int              `json:"timezone_id"`
	CurrencyID      string           `json:"currency_id"`
	From            string           `json:"from"`
	To              string           `json:"to"`
	ShowEvents      bool             `json:"show_events"`
	ShowConversions bool             `json:"show_conversions"`
	Query           ConversionsQuery `json:"query"`
}

type ConversionsQuery struct {
	Filters     []Filter `json:"filters"`
	SearchTerms []string `json:"search_terms"`
}

// EntityReportRequest is the POST body for reporting/entity
type EntityReportRequest struct {
	TimezoneID int                  `json:"timezone_id"`
	CurrencyID string               `json:"currency_id"`
	From       string               `json:"from"`
	To         string               `json:"to"`
	Columns    []EntityReportColumn `json:"columns"`
	Query      EntityReportQuery    `json:"query"`
	Format     string               `json:"format,omitempty"`
}

type EntityReportColumn struct {
	Column string `json:"column"`
}

type EntityReportQuery struct {
	Filters []Filter `json:"filters"`
}

// defaultOfferFilters restricts offerstable to live offers unless the
// caller overrides offer_status explicitly
func defaultOfferFilters() map[string]interface{} {
	return map[string]interface{}{"offer_status": "active"}
}

// defaultAffiliateFilters restricts affiliatestable to live accounts
func defaultAffiliateFilters() map[string]interface{} {
	return map[string]interface{}{"account_status": "active"}
}

// buildTableBody merges default filters with caller filters (caller wins)
// and attaches search terms. The filters key is omitted entirely when no
// filter applies; Everflow rejects an empty filters object on some
// endpoints.
func buildTableBody(defaults map[string]interface{}, opts TableOptions) map[string]interface{} {
	filters := make(map[string]interface{}, len(defaults)+len(opts.Filters))
	for k, v := range defaults {
		filters[k] = v
	}
	for _, f := range opts.Filters {
		if f.Field == "" {
			continue
		}
		filters[f.Field] = f.Value
	}

	body := map[string]interface{}{}
	if len(filters) > 0 {
		body["filters"] = filters
	}
	if term := strings.TrimSpace(opts.Search); term != "" {
		body["search_terms"] = []map[string]interface{}{
			{"search_type": "name", "value": term},
		}
	}
	return body
}

// tableQuery renders paging and relationship expansion as a query string,
// empty when everything is at its default
func tableQuery(opts TableOptions, relationship string) string {
	q := url.Values{}
	if opts.Page > 1 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	if relationship != "" {
		q.Set("relationship", relationship)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
