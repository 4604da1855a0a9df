package everflow

import "strconv"

// Ratio formats num/den with two decimals. Zero denominators yield
// "0.00" instead of NaN or Inf.
func Ratio(num, den float64) string {
	if den == 0 {
		return "0.00"
	}
	return strconv.FormatFloat(num/den, 'f', 2, 64)
}

// TransformEntityRow flattens one reporting row: the nested counters are
// lifted to the top level, derived ratios are computed from the raw
// counters, and dimension columns become {id, name} references.
func TransformEntityRow(row EntityRow) ReportingRow {
	out := ReportingRow{
		ConversionRate: "0.00",
		CTR:            "0.00",
		EPC:            "0.00",
		RPC:            "0.00",
	}

	if rep := row.Reporting; rep != nil {
		out.TotalClicks = rep.TotalClick
		out.UniqueClicks = rep.UniqueClick
		out.Conversions = rep.CV
		out.Payout = rep.Payout
		out.Revenue = rep.Revenue
		out.Profit = rep.Revenue - rep.Payout
		out.GrossSales = rep.GrossSales
		out.Impressions = rep.Imp
		out.MediaBuyingCost = rep.MediaBuyingCost

		clicks := float64(rep.TotalClick)
		out.ConversionRate = Ratio(float64(rep.CV)*100, clicks)
		out.CTR = Ratio(clicks*100, float64(rep.Imp))
		out.EPC = Ratio(rep.Payout, clicks)
		out.RPC = Ratio(rep.Revenue, clicks)
	}

	for _, col := range row.Columns {
		dim := &Dimension{Name: col.Label}
		if id, err := strconv.ParseInt(col.ID, 10, 64); err == nil {
			dim.ID = id
		}
		if dim.Name == "" {
			dim.Name = col.ID
		}

		switch col.ColumnType {
		case "offer":
			out.Offer = dim
		case "affiliate":
			out.Affiliate = dim
		case "advertiser":
			out.Advertiser = dim
		}
	}

	return out
}

// TransformEntityTable flattens every row of an entity report
func TransformEntityTable(resp *EntityTableResponse) []ReportingRow {
	if resp == nil {
		return []ReportingRow{}
	}
	rows := make([]ReportingRow, len(resp.Table))
	for i, row := range resp.Table {
		rows[i] = TransformEntityRow(row)
	}
	return rows
}

// TransformEntitySummary flattens the report summary into dashboard
// metrics, recomputing profit from revenue and payout
func TransformEntitySummary(summary *EntitySummary) ReportingMetrics {
	if summary == nil {
		return ReportingMetrics{ConversionRate: "0.00"}
	}
	return ReportingMetrics{
		TotalClicks:     summary.TotalClick,
		UniqueClicks:    summary.UniqueClick,
		Conversions:     summary.CV,
		ConversionRate:  Ratio(float64(summary.CV)*100, float64(summary.TotalClick)),
		Payout:          summary.Payout,
		Revenue:         summary.Revenue,
		Profit:          summary.Revenue - summary.Payout,
		GrossSales:      summary.GrossSales,
		Impressions:     summary.Imp,
		MediaBuyingCost: summary.MediaBuyingCost,
	}
}

// BuildDashboardSummary derives KPI totals and period-over-period trends
// from current and previous period conversions. Trend percentages guard
// zero previous values the same way ratios do.
func BuildDashboardSummary(current, previous []ConversionRecord) DashboardSummary {
	curProfit, curRevenue, curConversions := SummarizeProfit(AggregateProfit(current, GroupByOffer, 0))
	prevProfit, prevRevenue, prevConversions := SummarizeProfit(AggregateProfit(previous, GroupByOffer, 0))

	margin := 0.0
	if curRevenue != 0 {
		margin = curProfit / curRevenue * 100
	}
	prevMargin := 0.0
	if prevRevenue != 0 {
		prevMargin = prevProfit / prevRevenue * 100
	}

	return DashboardSummary{
		TotalProfit:      curProfit,
		TotalRevenue:     curRevenue,
		TotalConversions: curConversions,
		ProfitMargin:     margin,
		Trends: DashboardTrends{
			Profit:      trendPercent(curProfit, prevProfit),
			Revenue:     trendPercent(curRevenue, prevRevenue),
			Conversions: trendPercent(float64(curConversions), float64(prevConversions)),
			Margin:      margin - prevMargin,
		},
	}
}

func trendPercent(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
