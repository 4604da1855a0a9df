package everflow

import (
	"sort"
	"strconv"
)

// Profit grouping dimensions
const (
	GroupByOffer     = "offer"
	GroupByAffiliate = "affiliate"
)

// AggregateProfit groups conversion rows by offer or affiliate and sums
// revenue, payout and computed profit per group. Results are sorted by
// profit descending (stable, so equal-profit groups keep first-seen
// order) and truncated to limit after sorting. limit <= 0 means no cap.
func AggregateProfit(conversions []ConversionRecord, groupBy string, limit int) []ProfitRecord {
	groups := make(map[string]*ProfitRecord)
	var order []string

	for _, conv := range conversions {
		id, name := conversionEntity(conv, groupBy)

		rec, ok := groups[id]
		if !ok {
			rec = &ProfitRecord{ID: id, Name: name}
			groups[id] = rec
			order = append(order, id)
		}
		if rec.Name == "" && name != "" {
			rec.Name = name
		}

		rec.Conversions++
		rec.Revenue += conv.Revenue
		rec.Payout += conv.Payout
		rec.Profit += conv.Revenue - conv.Payout
	}

	records := make([]ProfitRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *groups[id])
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Profit > records[j].Profit
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// conversionEntity extracts the grouping key for a conversion. Rows with
// no relationship data land in a shared "unknown" bucket instead of
// being dropped.
func conversionEntity(conv ConversionRecord, groupBy string) (id, name string) {
	rel := conv.Relationship

	if groupBy == GroupByAffiliate {
		if rel != nil && rel.Affiliate != nil {
			return strconv.FormatInt(rel.Affiliate.NetworkAffiliateID, 10), rel.Affiliate.Name
		}
		return "unknown", "Unknown Affiliate"
	}

	if rel != nil && rel.Offer != nil {
		return strconv.FormatInt(rel.Offer.NetworkOfferID, 10), rel.Offer.Name
	}
	return "unknown", "Unknown Offer"
}

// SummarizeProfit totals a set of profit records into dashboard KPIs
func SummarizeProfit(records []ProfitRecord) (profit, revenue float64, conversions int) {
	for _, rec := range records {
		profit += rec.Profit
		revenue += rec.Revenue
		conversions += rec.Conversions
	}
	return profit, revenue, conversions
}
