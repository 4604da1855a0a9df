package everflow

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML removes markup tags from upstream descriptions
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

// epochToTime formats epoch seconds as RFC 3339 UTC, empty for zero or
// negative values so absent timestamps stay absent
func epochToTime(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// statusLabel maps upstream status codes to display labels
func statusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return "Active"
	case "paused":
		return "Paused"
	case "inactive", "deleted":
		return "Inactive"
	case "pending":
		return "Pending"
	case "suspended":
		return "Suspended"
	case "":
		return "Unknown"
	default:
		s := strings.ToLower(strings.TrimSpace(status))
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// fallbackName returns a synthesized display name when upstream omits one
func fallbackName(prefix, id string) string {
	return prefix + " " + id
}

// defaultPayout resolves the payout amount and type for an offer.
// Precedence: explicit payout_amount, then default_payout, then the
// is_default entry of relationship.payouts, then zero cpa.
func defaultPayout(raw RawOffer) (float64, string) {
	payoutType := "cpa"
	if raw.PayoutAmount != 0 {
		return float64(raw.PayoutAmount), payoutType
	}
	if raw.DefaultPayout != 0 {
		return float64(raw.DefaultPayout), payoutType
	}
	if raw.Relationship != nil && raw.Relationship.Payouts != nil {
		for _, entry := range raw.Relationship.Payouts.Entries {
			if entry.IsDefault {
				amount := entry.PayoutAmount
				if amount == 0 && entry.PayoutPercentage != 0 {
					amount = entry.PayoutPercentage
				}
				if entry.PayoutType != "" {
					payoutType = entry.PayoutType
				}
				return amount, payoutType
			}
		}
	}
	return 0, payoutType
}

// NormalizeOffer flattens a raw offer into the stable dashboard shape
func NormalizeOffer(raw RawOffer) Offer {
	id := strconv.FormatInt(raw.NetworkOfferID, 10)

	name := raw.Name
	if name == "" {
		name = "Unnamed Offer"
	}

	description := raw.Description
	if description == "" {
		description = raw.HTMLDescription
	}

	payout, payoutType := defaultPayout(raw)

	offer := Offer{
		ID:             id,
		Name:           name,
		Status:         statusLabel(raw.OfferStatus),
		Category:       raw.Category,
		Description:    stripHTML(description),
		PreviewURL:     firstNonEmpty(raw.PreviewURL, raw.OfferURL),
		TrackingURL:    firstNonEmpty(raw.TrackingURL, raw.DestinationURL),
		ThumbnailURL:   raw.ThumbnailURL,
		CurrencyID:     raw.CurrencyID,
		DefaultPayout:  payout,
		DefaultRevenue: float64(raw.DefaultRevenue),
		PayoutType:     payoutType,
		AdvertiserID:   raw.NetworkAdvertiserID,
		AdvertiserName: raw.NetworkAdvertiserName,
		Countries:      emptySlice(raw.Countries),
		Platforms:      []string{},
		DeviceTypes:    []string{},
		Languages:      []string{},
		Visibility:     raw.Visibility,
		CreatedAt:      epochToTime(raw.TimeCreated),
		UpdatedAt:      epochToTime(raw.TimeSaved),
		Caps: OfferCaps{
			DailyConversions:   raw.DailyConversionCap,
			WeeklyConversions:  raw.WeeklyConversionCap,
			MonthlyConversions: raw.MonthlyConversionCap,
			GlobalConversions:  raw.GlobalConversionCap,
			DailyPayout:        raw.DailyPayoutCap,
		},
	}

	if raw.RevenueAmount != 0 {
		offer.DefaultRevenue = float64(raw.RevenueAmount)
	}
	if raw.Advertiser != nil {
		offer.AdvertiserID = raw.Advertiser.NetworkAdvertiserID
		offer.AdvertiserName = raw.Advertiser.Name
	}

	if rel := raw.Relationship; rel != nil {
		offer.AffiliateStatus = rel.OfferAffiliateStatus
		if rel.Category != nil && offer.Category == "" {
			offer.Category = rel.Category.Name
		}
		if rel.Ruleset != nil {
			if len(rel.Ruleset.Countries) > 0 {
				offer.Countries = rel.Ruleset.Countries
			}
			offer.Platforms = emptySlice(rel.Ruleset.Platforms)
			offer.DeviceTypes = emptySlice(rel.Ruleset.DeviceTypes)
			offer.Languages = emptySlice(rel.Ruleset.Languages)
		}
		if rel.Reporting != nil {
			offer.Performance = OfferPerformance{
				Impressions: rel.Reporting.Imp,
				Clicks:      rel.Reporting.TotalClick,
				Conversions: rel.Reporting.CV,
				Revenue:     rel.Reporting.Revenue,
				CVR:         rel.Reporting.CVR,
			}
		}
		if rel.Creatives != nil {
			offer.CreativesCount = rel.Creatives.Total
		}
		if rel.RemainingCaps != nil {
			offer.Caps.RemainingDailyPayout = rel.RemainingCaps.RemainingDailyPayoutCap
			offer.Caps.RemainingDailyConversions = rel.RemainingCaps.RemainingDailyConversionCap
		}
	}

	if offer.Category == "" {
		offer.Category = "General"
	}
	if offer.AdvertiserName == "" {
		offer.AdvertiserName = "Unknown"
	}

	return offer
}

// NormalizeOffers maps a raw offer batch, skipping nothing: a record with
// missing fields still yields a usable row
func NormalizeOffers(raws []RawOffer) []Offer {
	offers := make([]Offer, len(raws))
	for i, raw := range raws {
		offers[i] = NormalizeOffer(raw)
	}
	return offers
}

// NormalizeAffiliate flattens a raw affiliate
func NormalizeAffiliate(raw RawAffiliate) Affiliate {
	id := strconv.FormatInt(raw.NetworkAffiliateID, 10)

	name := raw.Name
	if name == "" {
		name = fallbackName("Affiliate", id)
	}

	return Affiliate{
		ID:                 id,
		Name:               name,
		Status:             statusLabel(raw.AccountStatus),
		AccountManagerID:   raw.AccountManagerID,
		AccountManagerName: raw.AccountManagerName,
		TodayRevenue:       float64(raw.TodayRevenue),
		Balance:            raw.Balance,
		Labels:             emptySlice(raw.Labels),
		PaymentType:        raw.PaymentType,
		IsPayable:          raw.IsPayable,
		LastLoginAt:        epochToTime(raw.LastLogin),
		CreatedAt:          epochToTime(raw.TimeCreated),
		UpdatedAt:          epochToTime(raw.TimeSaved),
	}
}

// NormalizeAffiliates maps a raw affiliate batch
func NormalizeAffiliates(raws []RawAffiliate) []Affiliate {
	affiliates := make([]Affiliate, len(raws))
	for i, raw := range raws {
		affiliates[i] = NormalizeAffiliate(raw)
	}
	return affiliates
}

// NormalizeAdvertiser flattens a raw advertiser
func NormalizeAdvertiser(raw RawAdvertiser) Advertiser {
	id := strconv.FormatInt(raw.NetworkAdvertiserID, 10)

	name := raw.Name
	if name == "" {
		name = fallbackName("Advertiser", id)
	}

	return Advertiser{
		ID:           id,
		Name:         name,
		Status:       statusLabel(raw.AccountStatus),
		TodayRevenue: float64(raw.TodayRevenue),
		Labels:       emptySlice(raw.Labels),
		CreatedAt:    epochToTime(raw.TimeCreated),
		UpdatedAt:    epochToTime(raw.TimeSaved),
	}
}

// NormalizeAdvertisers maps a raw advertiser batch
func NormalizeAdvertisers(raws []RawAdvertiser) []Advertiser {
	advertisers := make([]Advertiser, len(raws))
	for i, raw := range raws {
		advertisers[i] = NormalizeAdvertiser(raw)
	}
	return advertisers
}

// NormalizeDeal flattens a raw deal, lifting the first related offer
// into top-level offer fields
func NormalizeDeal(raw RawDeal) Deal {
	id := strconv.FormatInt(raw.NetworkAdvertiserDealID, 10)

	name := raw.Name
	if name == "" {
		name = fallbackName("Deal", id)
	}

	deal := Deal{
		ID:                 id,
		Name:               name,
		BrandName:          raw.BrandName,
		Type:               raw.DealType,
		Status:             statusLabel(raw.DealStatus),
		Categories:         emptySlice(raw.DealCategories),
		Description:        stripHTML(raw.Description),
		Restrictions:       stripHTML(raw.Restrictions),
		Scope:              raw.Scope,
		CouponCode:         raw.CouponCode,
		DiscountPercentage: raw.CouponCodeDiscountPercentage,
		DiscountAmount:     raw.CouponCodeDiscountAmount,
		DiscountCurrency:   raw.CouponCodeDiscountCurrencyID,
		ThresholdAmount:    raw.ThresholdAmount,
		ValidFrom:          epochToTime(raw.DateValidFrom),
		ValidTo:            epochToTime(raw.DateValidTo),
		CreatedAt:          epochToTime(raw.TimeCreated),
		UpdatedAt:          epochToTime(raw.TimeSaved),
	}

	if rel := raw.Relationship; rel != nil {
		deal.ProductCount = len(rel.DealProducts)
		if len(rel.Offers) > 0 {
			deal.OfferID = strconv.FormatInt(rel.Offers[0].NetworkOfferID, 10)
			deal.OfferName = rel.Offers[0].Name
		}
	}

	return deal
}

// NormalizeDeals maps a raw deal batch
func NormalizeDeals(raws []RawDeal) []Deal {
	deals := make([]Deal, len(raws))
	for i, raw := range raws {
		deals[i] = NormalizeDeal(raw)
	}
	return deals
}

// NormalizeCouponCode flattens a raw coupon code
func NormalizeCouponCode(raw RawCouponCode) CouponCode {
	id := strconv.FormatInt(raw.NetworkCouponCodeID, 10)

	offerID := ""
	if raw.NetworkOfferID != 0 {
		offerID = strconv.FormatInt(raw.NetworkOfferID, 10)
	}

	coupon := CouponCode{
		ID:           id,
		Code:         raw.CouponCode,
		Status:       statusLabel(raw.CouponStatus),
		OfferID:      offerID,
		TrackingLink: raw.TrackingLink,
		StartDate:    raw.StartDate,
		EndDate:      raw.EndDate,
		Description:  stripHTML(raw.Description),
		CreatedAt:    epochToTime(raw.TimeCreated),
		UpdatedAt:    epochToTime(raw.TimeSaved),
	}

	if raw.Relationship != nil && raw.Relationship.Offer != nil {
		coupon.OfferID = strconv.FormatInt(raw.Relationship.Offer.NetworkOfferID, 10)
		coupon.OfferName = raw.Relationship.Offer.Name
	}
	if coupon.OfferName == "" && coupon.OfferID != "" {
		coupon.OfferName = fallbackName("Offer", coupon.OfferID)
	}

	return coupon
}

// NormalizeCouponCodes maps a raw coupon batch
func NormalizeCouponCodes(raws []RawCouponCode) []CouponCode {
	coupons := make([]CouponCode, len(raws))
	for i, raw := range raws {
		coupons[i] = NormalizeCouponCode(raw)
	}
	return coupons
}

// NormalizeTrafficControl flattens a raw traffic control
func NormalizeTrafficControl(raw RawTrafficControl) TrafficControl {
	id := strconv.FormatInt(raw.NetworkTrafficControlID, 10)

	tc := TrafficControl{
		ID:               id,
		Name:             fallbackName("Control", id),
		Status:           statusLabel(raw.Status),
		ControlType:      raw.ControlType,
		IsApplyAllOffers: raw.IsApplyAllOffers,
		ComparisonMethod: raw.ComparisonMethod,
		Variables:        emptySlice(raw.Variables),
		ValidFrom:        raw.DateValidFrom,
		ValidTo:          raw.DateValidTo,
	}

	if raw.Relationship != nil {
		if raw.Relationship.Name != "" {
			tc.Name = raw.Relationship.Name
		}
		tc.Description = raw.Relationship.Description
	}

	return tc
}

// NormalizeBlockedSource flattens a raw blocked source
func NormalizeBlockedSource(raw RawBlockedSource) BlockedSource {
	offerID := strconv.FormatInt(raw.NetworkOfferID, 10)

	name := raw.OfferName
	if name == "" {
		name = fallbackName("Offer", offerID)
	}

	return BlockedSource{
		OfferID:   offerID,
		OfferName: name,
		SubID:     raw.SubID,
		Status:    statusLabel(raw.TrafficBlockingStatus),
		CreatedAt: epochToTime(raw.TimeCreated),
		UpdatedAt: epochToTime(raw.TimeSaved),
	}
}

// NormalizeTrafficData assembles the combined traffic view
func NormalizeTrafficData(controls []RawTrafficControl, sources []RawBlockedSource, variables []BlockedVariable) TrafficData {
	data := TrafficData{
		TrafficControls:  make([]TrafficControl, len(controls)),
		BlockedSources:   make([]BlockedSource, len(sources)),
		BlockedVariables: variables,
	}
	for i, raw := range controls {
		data.TrafficControls[i] = NormalizeTrafficControl(raw)
	}
	for i, raw := range sources {
		data.BlockedSources[i] = NormalizeBlockedSource(raw)
	}
	if data.BlockedVariables == nil {
		data.BlockedVariables = []BlockedVariable{}
	}
	return data
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// emptySlice keeps JSON output as [] instead of null
func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
