package everflow

import "testing"

func TestRatio(t *testing.T) {
	if got := Ratio(50, 0); got != "0.00" {
		t.Errorf("zero denominator = %q, want 0.00", got)
	}
	if got := Ratio(1, 3); got != "0.33" {
		t.Errorf("Ratio(1,3) = %q", got)
	}
	if got := Ratio(500, 100); got != "5.00" {
		t.Errorf("Ratio(500,100) = %q", got)
	}
}

func TestTransformEntityRow(t *testing.T) {
	row := EntityRow{
		Columns: []EntityColumnValue{
			{ColumnType: "offer", ID: "7", Label: "Gaming"},
			{ColumnType: "affiliate", ID: "12", Label: "Partner"},
		},
		Reporting: &ReportingCounters{
			Imp:        10000,
			TotalClick: 400,
			CV:         20,
			Payout:     100,
			Revenue:    300,
		},
	}

	out := TransformEntityRow(row)

	if out.Profit != 200 {
		t.Errorf("Profit = %v, want revenue-payout", out.Profit)
	}
	if out.ConversionRate != "5.00" {
		t.Errorf("ConversionRate = %q", out.ConversionRate)
	}
	if out.CTR != "4.00" {
		t.Errorf("CTR = %q", out.CTR)
	}
	if out.EPC != "0.25" {
		t.Errorf("EPC = %q", out.EPC)
	}
	if out.RPC != "0.75" {
		t.Errorf("RPC = %q", out.RPC)
	}
	if out.Offer == nil || out.Offer.ID != 7 || out.Offer.Name != "Gaming" {
		t.Errorf("Offer dim = %+v", out.Offer)
	}
	if out.Affiliate == nil || out.Affiliate.ID != 12 {
		t.Errorf("Affiliate dim = %+v", out.Affiliate)
	}
	if out.Advertiser != nil {
		t.Error("Advertiser dim should be absent")
	}
}

func TestTransformEntityRowZeroClicks(t *testing.T) {
	out := TransformEntityRow(EntityRow{Reporting: &ReportingCounters{CV: 5}})
	if out.ConversionRate != "0.00" || out.EPC != "0.00" || out.RPC != "0.00" || out.CTR != "0.00" {
		t.Errorf("zero-click ratios = %+v", out)
	}
}

func TestTransformEntityRowNilReporting(t *testing.T) {
	out := TransformEntityRow(EntityRow{})
	if out.ConversionRate != "0.00" {
		t.Errorf("ConversionRate = %q", out.ConversionRate)
	}
}

func TestTransformEntitySummary(t *testing.T) {
	metrics := TransformEntitySummary(&EntitySummary{
		TotalClick: 1000,
		CV:         50,
		Payout:     400,
		Revenue:    1000,
	})
	if metrics.Profit != 600 {
		t.Errorf("Profit = %v", metrics.Profit)
	}
	if metrics.ConversionRate != "5.00" {
		t.Errorf("ConversionRate = %q", metrics.ConversionRate)
	}

	empty := TransformEntitySummary(nil)
	if empty.ConversionRate != "0.00" {
		t.Errorf("nil summary ConversionRate = %q", empty.ConversionRate)
	}
}

func TestBuildDashboardSummary(t *testing.T) {
	current := []ConversionRecord{
		conv(1, "A", 10, "P", 200, 100),
		conv(1, "A", 10, "P", 100, 50),
	}
	previous := []ConversionRecord{
		conv(1, "A", 10, "P", 100, 50),
	}

	summary := BuildDashboardSummary(current, previous)

	if summary.TotalProfit != 150 || summary.TotalRevenue != 300 || summary.TotalConversions != 2 {
		t.Errorf("totals = %+v", summary)
	}
	if summary.ProfitMargin != 50 {
		t.Errorf("margin = %v", summary.ProfitMargin)
	}
	// 150 vs 50 previous profit
	if summary.Trends.Profit != 200 {
		t.Errorf("profit trend = %v", summary.Trends.Profit)
	}
	if summary.Trends.Conversions != 100 {
		t.Errorf("conversions trend = %v", summary.Trends.Conversions)
	}
}

func TestBuildDashboardSummaryEmptyPrevious(t *testing.T) {
	summary := BuildDashboardSummary([]ConversionRecord{conv(1, "A", 10, "P", 10, 5)}, nil)
	if summary.Trends.Profit != 100 {
		t.Errorf("trend against empty previous = %v, want 100", summary.Trends.Profit)
	}

	empty := BuildDashboardSummary(nil, nil)
	if empty.Trends.Profit != 0 || empty.ProfitMargin != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
