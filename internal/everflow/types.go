package everflow

import (
	"strconv"
	"strings"
)

// Config holds Everflow API configuration
type Config struct {
	APIKey              string `yaml:"api_key"`
	BaseURL             string `yaml:"base_url"`
	TimezoneID          int    `yaml:"timezone_id"`
	ReportingTimezoneID int    `yaml:"reporting_timezone_id"`
	CurrencyID          string `yaml:"currency_id"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
}

// Money is a float64 that tolerates the formats Everflow uses for amounts:
// plain numbers, numeric strings, and currency strings like "$1,234.56".
// Anything unparseable decodes to 0 rather than failing the whole record.
type Money float64

// UnmarshalJSON never returns an error: a malformed amount in one field
// must not abort decoding of the rest of the batch.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Money(f)
	return nil
}

// Paging is Everflow's standard paging block
type Paging struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// ---------- Raw upstream records ----------
//
// These mirror the wire shapes Everflow actually returns, which are
// inconsistent between endpoints. Treat every field as optional.

// RawOffer is an offer as returned by the network offerstable endpoint or
// the affiliate-side offersrunnable/alloffers endpoints.
type RawOffer struct {
	NetworkOfferID        int64              `json:"network_offer_id"`
	Name                  string             `json:"name"`
	OfferStatus           string             `json:"offer_status"`
	CurrencyID            string             `json:"currency_id"`
	Visibility            string             `json:"visibility"`
	Category              string             `json:"category"`
	Description           string             `json:"description"`
	HTMLDescription       string             `json:"html_description"`
	PreviewURL            string             `json:"preview_url"`
	OfferURL              string             `json:"offer_url"`
	TrackingURL           string             `json:"tracking_url"`
	DestinationURL        string             `json:"destination_url"`
	ThumbnailURL          string             `json:"thumbnail_url"`
	DefaultPayout         Money              `json:"default_payout"`
	DefaultRevenue        Money              `json:"default_revenue"`
	PayoutAmount          Money              `json:"payout_amount"`
	RevenueAmount         Money              `json:"revenue_amount"`
	NetworkAdvertiserID   int64              `json:"network_advertiser_id"`
	NetworkAdvertiserName string             `json:"network_advertiser_name"`
	Advertiser            *RawAdvertiserRef  `json:"advertiser"`
	Countries             []string           `json:"countries"`
	TimeCreated           int64              `json:"time_created"`
	TimeSaved             int64              `json:"time_saved"`
	DailyConversionCap    int64              `json:"daily_conversion_cap"`
	WeeklyConversionCap   int64              `json:"weekly_conversion_cap"`
	MonthlyConversionCap  int64              `json:"monthly_conversion_cap"`
	GlobalConversionCap   int64              `json:"global_conversion_cap"`
	DailyPayoutCap        int64              `json:"daily_payout_cap"`
	Relationship          *OfferRelationship `json:"relationship"`
}

// RawAdvertiserRef is the nested advertiser object on an offer
type RawAdvertiserRef struct {
	NetworkAdvertiserID int64  `json:"network_advertiser_id"`
	Name                string `json:"name"`
}

// OfferRelationship holds the nested substructures requested via the
// relationship query parameter
type OfferRelationship struct {
	OfferAffiliateStatus string             `json:"offer_affiliate_status"`
	Category             *RawCategory       `json:"category"`
	Payouts              *PayoutCollection  `json:"payouts"`
	Ruleset              *RawRuleset        `json:"ruleset"`
	Reporting            *ReportingCounters `json:"reporting"`
	Creatives            *CreativesSummary  `json:"creatives"`
	RemainingCaps        *RawRemainingCaps  `json:"remaining_caps"`
}

type RawCategory struct {
	NetworkCategoryID int64  `json:"network_category_id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
}

type PayoutCollection struct {
	Total   int           `json:"total"`
	Entries []PayoutEntry `json:"entries"`
}

type PayoutEntry struct {
	NetworkOfferPayoutRevenueID int64   `json:"network_offer_payout_revenue_id"`
	PayoutType                  string  `json:"payout_type"`
	EntryName                   string  `json:"entry_name"`
	PayoutAmount                float64 `json:"payout_amount"`
	PayoutPercentage            float64 `json:"payout_percentage"`
	IsDefault                   bool    `json:"is_default"`
}

type RawRuleset struct {
	Countries   []string `json:"countries"`
	Platforms   []string `json:"platforms"`
	DeviceTypes []string `json:"device_types"`
	Languages   []string `json:"languages"`
}

// ReportingCounters is the reporting block Everflow nests under
// relationship.reporting and reuses on entity report rows
type ReportingCounters struct {
	Imp             int64   `json:"imp"`
	TotalClick      int64   `json:"total_click"`
	UniqueClick     int64   `json:"unique_click"`
	CV              int64   `json:"cv"`
	CVR             float64 `json:"cvr"`
	Payout          float64 `json:"payout"`
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	GrossSales      float64 `json:"gross_sales"`
	MediaBuyingCost float64 `json:"media_buying_cost"`
}

type CreativesSummary struct {
	Total int `json:"total"`
}

type RawRemainingCaps struct {
	RemainingDailyPayoutCap     float64 `json:"remaining_daily_payout_cap"`
	RemainingDailyConversionCap int64   `json:"remaining_daily_conversion_cap"`
	RemainingDailyClickCap      int64   `json:"remaining_daily_click_cap"`
}

// RawAffiliate is an affiliate as returned by affiliatestable
type RawAffiliate struct {
	NetworkAffiliateID int64    `json:"network_affiliate_id"`
	Name               string   `json:"name"`
	AccountStatus      string   `json:"account_status"`
	AccountManagerID   int64    `json:"account_manager_id"`
	AccountManagerName string   `json:"account_manager_name"`
	TodayRevenue       Money    `json:"today_revenue"`
	Balance            float64  `json:"balance"`
	Labels             []string `json:"labels"`
	PaymentType        string   `json:"payment_type"`
	IsPayable          bool     `json:"is_payable"`
	LastLogin          int64    `json:"last_login"`
	TimeCreated        int64    `json:"time_created"`
	TimeSaved          int64    `json:"time_saved"`
}

// RawAdvertiser is an advertiser from the advertisers listing
type RawAdvertiser struct {
	NetworkAdvertiserID int64    `json:"network_advertiser_id"`
	Name                string   `json:"name"`
	AccountStatus       string   `json:"account_status"`
	TodayRevenue        Money    `json:"today_revenue"`
	Labels              []string `json:"labels"`
	TimeCreated         int64    `json:"time_created"`
	TimeSaved           int64    `json:"time_saved"`
}

// RawDeal is an advertiser deal
type RawDeal struct {
	NetworkAdvertiserDealID      int64             `json:"network_advertiser_deal_id"`
	Name                         string            `json:"name"`
	BrandName                    string            `json:"brand_name"`
	DealType                     string            `json:"deal_type"`
	DealStatus                   string            `json:"deal_status"`
	DealCategories               []string          `json:"deal_categories"`
	Description                  string            `json:"description"`
	Restrictions                 string            `json:"restrictions"`
	Scope                        string            `json:"scope"`
	CouponCode                   string            `json:"coupon_code"`
	CouponCodeDiscountPercentage float64           `json:"coupon_code_discount_percentage"`
	CouponCodeDiscountAmount     float64           `json:"coupon_code_discount_amount"`
	CouponCodeDiscountCurrencyID string            `json:"coupon_code_discount_currency_id"`
	ThresholdAmount              float64           `json:"threshold_amount"`
	PurchaseLimitAmount          float64           `json:"purchase_limit_amount"`
	DateValidFrom                int64             `json:"date_valid_from"`
	DateValidTo                  int64             `json:"date_valid_to"`
	TimeCreated                  int64             `json:"time_created"`
	TimeSaved                    int64             `json:"time_saved"`
	Relationship                 *DealRelationship `json:"relationship"`
}

type DealRelationship struct {
	DealProducts []RawDealProduct `json:"deal_products"`
	Offers       []RawOfferRef    `json:"offers"`
}

type RawDealProduct struct {
	ProductName         string  `json:"product_name"`
	ProductURL          string  `json:"product_url"`
	BeforeDiscountPrice float64 `json:"before_discount_price"`
	AfterDiscountPrice  float64 `json:"after_discount_price"`
	DiscountPercentage  float64 `json:"discount_percentage"`
}

type RawOfferRef struct {
	NetworkOfferID int64  `json:"network_offer_id"`
	Name           string `json:"name"`
	OfferStatus    string `json:"offer_status"`
	TrackingURL    string `json:"tracking_url"`
}

// RawCouponCode is a coupon code from couponcodestable
type RawCouponCode struct {
	NetworkCouponCodeID int64                   `json:"network_coupon_code_id"`
	NetworkOfferID      int64                   `json:"network_offer_id"`
	CouponCode          string                  `json:"coupon_code"`
	CouponStatus        string                  `json:"coupon_status"`
	TrackingLink        string                  `json:"tracking_link"`
	StartDate           string                  `json:"start_date"`
	EndDate             string                  `json:"end_date"`
	Description         string                  `json:"description"`
	IsPlainText         bool                    `json:"is_description_plain_text"`
	TimeCreated         int64                   `json:"time_created"`
	TimeSaved           int64                   `json:"time_saved"`
	Relationship        *CouponCodeRelationship `json:"relationship"`
}

type CouponCodeRelationship struct {
	Offer *RawOfferRef `json:"offer"`
}

// RawTrafficControl is a traffic control from the affiliate-side API
type RawTrafficControl struct {
	NetworkTrafficControlID int64                       `json:"network_traffic_control_id"`
	Status                  string                      `json:"status"`
	IsApplyAllOffers        bool                        `json:"is_apply_all_offers"`
	ControlType             string                      `json:"control_type"`
	DateValidFrom           string                      `json:"date_valid_from"`
	DateValidTo             string                      `json:"date_valid_to"`
	ComparisonMethod        string                      `json:"comparison_method"`
	Variables               []string                    `json:"variables"`
	Relationship            *TrafficControlRelationship `json:"relationship"`
}

type TrafficControlRelationship struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RawBlockedSource is a blocked offer source
type RawBlockedSource struct {
	NetworkOfferID        int64  `json:"network_offer_id"`
	SubID                 string `json:"sub_id"`
	TrafficBlockingStatus string `json:"traffic_blocking_status"`
	OfferName             string `json:"offer_name"`
	TimeCreated           int64  `json:"time_created"`
	TimeSaved             int64  `json:"time_saved"`
}

// BlockedVariable is already flat on the wire
type BlockedVariable struct {
	Variable string `json:"variable"`
	Value    string `json:"value"`
	Operator string `json:"operator"`
}

// ConversionRecord is a raw conversion row from reporting/conversions
type ConversionRecord struct {
	ConversionID            string                  `json:"conversion_id"`
	TransactionID           string                  `json:"transaction_id"`
	Status                  string                  `json:"conversion_status"`
	EventName               string                  `json:"event_name"`
	Revenue                 float64                 `json:"revenue"`
	Payout                  float64                 `json:"payout"`
	RevenueType             string                  `json:"revenue_type"`
	PayoutType              string                  `json:"payout_type"`
	CurrencyID              string                  `json:"currency_id"`
	ConversionUnixTimestamp int64                   `json:"conversion_unix_timestamp"`
	ClickUnixTimestamp      int64                   `json:"click_unix_timestamp"`
	Relationship            *ConversionRelationship `json:"relationship"`
}

type ConversionRelationship struct {
	Offer      *RawOfferRef      `json:"offer"`
	Affiliate  *RawAffiliateRef  `json:"affiliate"`
	Advertiser *RawAdvertiserRef `json:"advertiser"`
}

type RawAffiliateRef struct {
	NetworkAffiliateID int64  `json:"network_affiliate_id"`
	Name               string `json:"name"`
}

// ---------- Upstream response wrappers ----------
//
// Each listing endpoint nests its rows under a resource-specific key.

type OffersResponse struct {
	Offers []RawOffer `json:"offers"`
	Paging *Paging    `json:"paging"`
}

type AffiliatesResponse struct {
	Affiliates []RawAffiliate `json:"affiliates"`
	Paging     *Paging        `json:"paging"`
}

type AdvertisersResponse struct {
	Advertisers []RawAdvertiser `json:"advertisers"`
	Paging      *Paging         `json:"paging"`
}

type DealsResponse struct {
	Deals  []RawDeal `json:"deals"`
	Paging *Paging   `json:"paging"`
}

type CouponCodesResponse struct {
	CouponCodes []RawCouponCode `json:"coupon_codes"`
	Paging      *Paging         `json:"paging"`
}

type TrafficControlsResponse struct {
	TrafficControls []RawTrafficControl `json:"traffic_controls"`
}

type BlockedSourcesResponse struct {
	BlockedSources []RawBlockedSource `json:"blocked_sources"`
}

type BlockedVariablesResponse struct {
	Variables []BlockedVariable `json:"variables"`
}

type ConversionsResponse struct {
	Conversions []ConversionRecord `json:"conversions"`
	Paging      *Paging            `json:"paging"`
}

// EntityTableResponse is the reporting/entity/table response
type EntityTableResponse struct {
	Table   []EntityRow    `json:"table"`
	Summary *EntitySummary `json:"summary"`
}

type EntityRow struct {
	Columns   []EntityColumnValue `json:"columns"`
	Reporting *ReportingCounters  `json:"reporting"`
}

type EntityColumnValue struct {
	ColumnType string `json:"column_type"`
	ID         string `json:"id"`
	Label      string `json:"label"`
}

// EntitySummary is the reporting/entity/summary response body
type EntitySummary struct {
	TotalClick      int64   `json:"total_click"`
	UniqueClick     int64   `json:"unique_click"`
	CV              int64   `json:"cv"`
	CVR             float64 `json:"cvr"`
	Payout          float64 `json:"payout"`
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	GrossSales      float64 `json:"gross_sales"`
	Imp             int64   `json:"imp"`
	MediaBuyingCost float64 `json:"media_buying_cost"`
}

// ---------- Normalized domain records ----------
//
// One stable flat shape per resource. Every record carries a non-empty ID
// and Name so the UI never sees missing identity fields.

// Offer is the normalized offer shape served to the UI
type Offer struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	Category        string           `json:"category"`
	Description     string           `json:"description"`
	PreviewURL      string           `json:"preview_url"`
	TrackingURL     string           `json:"tracking_url"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	CurrencyID      string           `json:"currency_id"`
	DefaultPayout   float64          `json:"default_payout"`
	DefaultRevenue  float64          `json:"default_revenue"`
	PayoutType      string           `json:"payout_type"`
	AdvertiserID    int64            `json:"advertiser_id"`
	AdvertiserName  string           `json:"advertiser_name"`
	Countries       []string         `json:"countries"`
	Platforms       []string         `json:"platforms"`
	DeviceTypes     []string         `json:"device_types"`
	Languages       []string         `json:"languages"`
	Visibility      string           `json:"visibility"`
	AffiliateStatus string           `json:"affiliate_status"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Caps            OfferCaps        `json:"caps"`
	Performance     OfferPerformance `json:"performance"`
	CreativesCount  int              `json:"creatives_count"`
}

type OfferCaps struct {
	DailyConversions          int64   `json:"daily_conversions"`
	WeeklyConversions         int64   `json:"weekly_conversions"`
	MonthlyConversions        int64   `json:"monthly_conversions"`
	GlobalConversions         int64   `json:"global_conversions"`
	DailyPayout               int64   `json:"daily_payout"`
	RemainingDailyPayout      float64 `json:"remaining_daily_payout"`
	RemainingDailyConversions int64   `json:"remaining_daily_conversions"`
}

type OfferPerformance struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	CVR         float64 `json:"cvr"`
}

// Affiliate is the normalized affiliate shape
type Affiliate struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Status             string   `json:"status"`
	AccountManagerID   int64    `json:"account_manager_id"`
	AccountManagerName string   `json:"account_manager_name"`
	TodayRevenue       float64  `json:"today_revenue"`
	Balance            float64  `json:"balance"`
	Labels             []string `json:"labels"`
	PaymentType        string   `json:"payment_type"`
	IsPayable          bool     `json:"is_payable"`
	LastLoginAt        string   `json:"last_login_at"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// Advertiser is the normalized advertiser shape
type Advertiser struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	TodayRevenue float64  `json:"today_revenue"`
	Labels       []string `json:"labels"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// Deal is the normalized advertiser deal shape
type Deal struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	BrandName          string   `json:"brand_name"`
	Type               string   `json:"type"`
	Status             string   `json:"status"`
	Categories         []string `json:"categories"`
	Description        string   `json:"description"`
	Restrictions       string   `json:"restrictions"`
	Scope              string   `json:"scope"`
	CouponCode         string   `json:"coupon_code"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DiscountAmount     float64  `json:"discount_amount"`
	DiscountCurrency   string   `json:"discount_currency"`
	ThresholdAmount    float64  `json:"threshold_amount"`
	ValidFrom          string   `json:"valid_from"`
	ValidTo            string   `json:"valid_to"`
	OfferID            string   `json:"offer_id"`
	OfferName          string   `json:"offer_name"`
	ProductCount       int      `json:"product_count"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// CouponCode is the normalized coupon code shape
type CouponCode struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Status       string `json:"status"`
	OfferID      string `json:"offer_id"`
	OfferName    string `json:"offer_name"`
	TrackingLink string `json:"tracking_link"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// TrafficControl is the normalized traffic control shape
type TrafficControl struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	ControlType      string   `json:"control_type"`
	IsApplyAllOffers bool     `json:"is_apply_all_offers"`
	ComparisonMethod string   `json:"comparison_method"`
	Variables        []string `json:"variables"`
	ValidFrom        string   `json:"valid_from"`
	ValidTo          string   `json:"valid_to"`
}

// BlockedSource is the normalized blocked offer source shape
type BlockedSource struct {
	OfferID   string `json:"offer_id"`
	OfferName string `json:"offer_name"`
	SubID     string `json:"sub_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TrafficData bundles the three traffic views served together
type TrafficData struct {
	TrafficControls  []TrafficControl  `json:"traffic_controls"`
	BlockedSources   []BlockedSource   `json:"blocked_sources"`
	BlockedVariables []BlockedVariable `json:"blocked_variables"`
}

// ProfitRecord is one grouped profit-by-entity row.
// Profit is always recomputed as revenue minus payout, never trusted
// from an upstream profit field.
type ProfitRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Profit      float64 `json:"profit"`
	Revenue     float64 `json:"revenue"`
	Payout      float64 `json:"payout"`
	Conversions int     `json:"conversions"`
}

// Dimension is an {id, name} reference attached to a reporting row
type Dimension struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReportingRow is one flattened reporting table row with computed ratios.
// Ratio fields are two-decimal strings; a zero denominator yields "0.00".
type ReportingRow struct {
	TotalClicks     int64      `json:"total_clicks"`
	UniqueClicks    int64      `json:"unique_clicks"`
	Conversions     int64      `json:"conversions"`
	Payout          float64    `json:"payout"`
	Revenue         float64    `json:"revenue"`
	Profit          float64    `json:"profit"`
	GrossSales      float64    `json:"gross_sales"`
	Impressions     int64      `json:"impressions"`
	MediaBuyingCost float64    `json:"media_buying_cost"`
	ConversionRate  string     `json:"conversionRate"`
	CTR             string     `json:"ctr"`
	EPC             string     `json:"epc"`
	RPC             string     `json:"rpc"`
	Offer           *Dimension `json:"offer,omitempty"`
	Affiliate       *Dimension `json:"affiliate,omitempty"`
	Advertiser      *Dimension `json:"advertiser,omitempty"`
}

// ReportingMetrics is the flattened reporting summary
type ReportingMetrics struct {
	TotalClicks     int64   `json:"totalClicks"`
	UniqueClicks    int64   `json:"uniqueClicks"`
	Conversions     int64   `json:"conversions"`
	ConversionRate  string  `json:"conversionRate"`
	Payout          float64 `json:"payout"`
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	GrossSales      float64 `json:"grossSales"`
	Impressions     int64   `json:"impressions"`
	MediaBuyingCost float64 `json:"mediaBuyingCost"`
}

// DashboardSummary is the KPI block for the dashboard landing page
type DashboardSummary struct {
	TotalProfit      float64         `json:"totalProfit"`
	TotalRevenue     float64         `json:"totalRevenue"`
	TotalConversions int             `json:"totalConversions"`
	ProfitMargin     float64         `json:"profitMargin"`
	Trends           DashboardTrends `json:"trends"`
}

// DashboardTrends holds percentage deltas against the prior period
type DashboardTrends struct {
	Profit      float64 `json:"profit"`
	Revenue     float64 `json:"revenue"`
	Conversions float64 `json:"conversions"`
	Margin      float64 `json:"margin"`
}
