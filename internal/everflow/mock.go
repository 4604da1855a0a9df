package everflow

// Sample datasets served when no API key is configured or the live API
// is unavailable. All values are fixed so responses are reproducible
// across restarts; timestamps hang off a single base epoch.

const mockEpochBase int64 = 1700000000

const day int64 = 86400

// MockOffers returns the sample offer catalog
func MockOffers() []Offer {
	return []Offer{
		{
			ID: "1", Name: "Mobile Gaming CPA - iOS", Status: "Active",
			Category: "Gaming", Description: "Premium mobile gaming app with high conversion rates",
			PreviewURL: "https://example.com/mobile-gaming", TrackingURL: "https://track.example.com/click/1",
			CurrencyID: "USD", DefaultPayout: 25.00, DefaultRevenue: 35.00, PayoutType: "cpa",
			AdvertiserID: 1, AdvertiserName: "GameCorp Inc.",
			Countries: []string{"US", "CA", "GB"}, Platforms: []string{}, DeviceTypes: []string{}, Languages: []string{},
			CreatedAt: epochToTime(mockEpochBase - 30*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "2", Name: "E-commerce Fashion - RevShare", Status: "Active",
			Category: "Fashion", Description: "Trendy fashion e-commerce with high AOV",
			PreviewURL: "https://example.com/fashion-store", TrackingURL: "https://track.example.com/click/2",
			CurrencyID: "USD", DefaultPayout: 15.00, DefaultRevenue: 25.00, PayoutType: "cpa",
			AdvertiserID: 2, AdvertiserName: "Fashion Forward LLC",
			Countries: []string{"US", "CA", "AU"}, Platforms: []string{}, DeviceTypes: []string{}, Languages: []string{},
			CreatedAt: epochToTime(mockEpochBase - 20*day), UpdatedAt: epochToTime(mockEpochBase - 2*day),
		},
		{
			ID: "3", Name: "Financial Services Lead Gen", Status: "Active",
			Category: "Finance", Description: "High-quality financial services lead generation",
			PreviewURL: "https://example.com/finance-leads", TrackingURL: "https://track.example.com/click/3",
			CurrencyID: "USD", DefaultPayout: 45.00, DefaultRevenue: 65.00, PayoutType: "cpa",
			AdvertiserID: 3, AdvertiserName: "FinTech Solutions",
			Countries: []string{"US"}, Platforms: []string{}, DeviceTypes: []string{}, Languages: []string{},
			CreatedAt: epochToTime(mockEpochBase - 15*day), UpdatedAt: epochToTime(mockEpochBase - 3*day),
		},
		{
			ID: "4", Name: "Health & Wellness CPL", Status: "Paused",
			Category: "Health", Description: "Health and wellness cost per lead campaign",
			PreviewURL: "https://example.com/health-wellness", TrackingURL: "https://track.example.com/click/4",
			CurrencyID: "USD", DefaultPayout: 12.50, DefaultRevenue: 20.00, PayoutType: "cpl",
			AdvertiserID: 4, AdvertiserName: "WellBeing Corp",
			Countries: []string{"US", "CA"}, Platforms: []string{}, DeviceTypes: []string{}, Languages: []string{},
			CreatedAt: epochToTime(mockEpochBase - 45*day), UpdatedAt: epochToTime(mockEpochBase - 5*day),
		},
		{
			ID: "5", Name: "Streaming Service Trial", Status: "Active",
			Category: "Entertainment", Description: "Free trial signups for a streaming platform",
			PreviewURL: "https://example.com/streaming", TrackingURL: "https://track.example.com/click/5",
			CurrencyID: "USD", DefaultPayout: 8.00, DefaultRevenue: 14.00, PayoutType: "cpa",
			AdvertiserID: 5, AdvertiserName: "StreamNow Media",
			Countries: []string{"US", "GB", "DE"}, Platforms: []string{}, DeviceTypes: []string{}, Languages: []string{},
			CreatedAt: epochToTime(mockEpochBase - 10*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
	}
}

// MockAffiliates returns the sample affiliate roster
func MockAffiliates() []Affiliate {
	return []Affiliate{
		{
			ID: "101", Name: "SuperAffiliate Pro", Status: "Active",
			AccountManagerID: 11, AccountManagerName: "Dana Reeves",
			TodayRevenue: 1250.50, Balance: 8420.00, Labels: []string{"premium", "email"},
			PaymentType: "wire", IsPayable: true,
			LastLoginAt: epochToTime(mockEpochBase - day),
			CreatedAt:   epochToTime(mockEpochBase - 400*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "102", Name: "Marketing Ninja", Status: "Active",
			AccountManagerID: 11, AccountManagerName: "Dana Reeves",
			TodayRevenue: 890.25, Balance: 3150.75, Labels: []string{"social"},
			PaymentType: "paypal", IsPayable: true,
			LastLoginAt: epochToTime(mockEpochBase - 2*day),
			CreatedAt:   epochToTime(mockEpochBase - 320*day), UpdatedAt: epochToTime(mockEpochBase - 2*day),
		},
		{
			ID: "103", Name: "Digital Dynamo", Status: "Active",
			AccountManagerID: 12, AccountManagerName: "Morgan Lee",
			TodayRevenue: 640.00, Balance: 1980.40, Labels: []string{"search", "display"},
			PaymentType: "wire", IsPayable: true,
			LastLoginAt: epochToTime(mockEpochBase - 3*day),
			CreatedAt:   epochToTime(mockEpochBase - 250*day), UpdatedAt: epochToTime(mockEpochBase - 3*day),
		},
		{
			ID: "104", Name: "Conversion King", Status: "Pending",
			AccountManagerID: 12, AccountManagerName: "Morgan Lee",
			TodayRevenue: 0, Balance: 0, Labels: []string{},
			PaymentType: "paypal", IsPayable: false,
			CreatedAt: epochToTime(mockEpochBase - 7*day), UpdatedAt: epochToTime(mockEpochBase - 7*day),
		},
		{
			ID: "105", Name: "Traffic Master", Status: "Suspended",
			AccountManagerID: 11, AccountManagerName: "Dana Reeves",
			TodayRevenue: 0, Balance: 420.10, Labels: []string{"push"},
			PaymentType: "wire", IsPayable: false,
			LastLoginAt: epochToTime(mockEpochBase - 40*day),
			CreatedAt:   epochToTime(mockEpochBase - 180*day), UpdatedAt: epochToTime(mockEpochBase - 30*day),
		},
	}
}

// MockAdvertisers returns the sample advertiser roster
func MockAdvertisers() []Advertiser {
	return []Advertiser{
		{
			ID: "1", Name: "GameCorp Inc.", Status: "Active",
			TodayRevenue: 5230.00, Labels: []string{"gaming"},
			CreatedAt: epochToTime(mockEpochBase - 500*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "2", Name: "Fashion Forward LLC", Status: "Active",
			TodayRevenue: 3180.75, Labels: []string{"ecommerce"},
			CreatedAt: epochToTime(mockEpochBase - 420*day), UpdatedAt: epochToTime(mockEpochBase - 2*day),
		},
		{
			ID: "3", Name: "FinTech Solutions", Status: "Active",
			TodayRevenue: 7640.20, Labels: []string{"finance", "leads"},
			CreatedAt: epochToTime(mockEpochBase - 360*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "4", Name: "WellBeing Corp", Status: "Inactive",
			TodayRevenue: 0, Labels: []string{},
			CreatedAt: epochToTime(mockEpochBase - 280*day), UpdatedAt: epochToTime(mockEpochBase - 60*day),
		},
	}
}

// MockDeals returns the sample advertiser deals
func MockDeals() []Deal {
	return []Deal{
		{
			ID: "1", Name: "Summer Sale - 25% Off", BrandName: "TechStore Pro",
			Type: "coupon", Status: "Active",
			Categories:  []string{"computers-accessories-tablets", "computers-accessories-software"},
			Description: "Get 25% off on all tech products this summer",
			Restrictions: "Valid for new customers only. Cannot be combined with other offers.",
			Scope:       "entire_store", CouponCode: "SUMMER25",
			DiscountPercentage: 25, DiscountCurrency: "USD", ThresholdAmount: 100,
			ValidFrom: epochToTime(mockEpochBase - day), ValidTo: epochToTime(mockEpochBase + 30*day),
			OfferID:   "2", OfferName: "E-commerce Fashion - RevShare", ProductCount: 2,
			CreatedAt: epochToTime(mockEpochBase - 5*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "2", Name: "Free Shipping Weekend", BrandName: "Fashion Forward",
			Type: "promotion", Status: "Active",
			Categories:  []string{"apparel"},
			Description: "Free shipping on all orders over $50",
			Scope:       "entire_store",
			DiscountAmount: 0, DiscountCurrency: "USD", ThresholdAmount: 50,
			ValidFrom: epochToTime(mockEpochBase), ValidTo: epochToTime(mockEpochBase + 3*day),
			OfferID:   "2", OfferName: "E-commerce Fashion - RevShare", ProductCount: 0,
			CreatedAt: epochToTime(mockEpochBase - 2*day), UpdatedAt: epochToTime(mockEpochBase),
		},
		{
			ID: "3", Name: "New Player Bonus", BrandName: "GameCorp",
			Type: "coupon", Status: "Paused",
			Categories:  []string{"gaming"},
			Description: "Bonus credits for first deposit",
			Scope:       "specific_products", CouponCode: "NEWPLAYER",
			DiscountPercentage: 10, DiscountCurrency: "USD",
			ValidFrom: epochToTime(mockEpochBase - 20*day), ValidTo: epochToTime(mockEpochBase + 10*day),
			OfferID:   "1", OfferName: "Mobile Gaming CPA - iOS", ProductCount: 1,
			CreatedAt: epochToTime(mockEpochBase - 20*day), UpdatedAt: epochToTime(mockEpochBase - 4*day),
		},
	}
}

// MockCouponCodes returns the sample coupon codes
func MockCouponCodes() []CouponCode {
	return []CouponCode{
		{
			ID: "1", Code: "SUMMER25", Status: "Active",
			OfferID: "2", OfferName: "E-commerce Fashion - RevShare",
			TrackingLink: "https://track.example.com/coupon/1",
			Description:  "25% off summer promotion",
			CreatedAt:    epochToTime(mockEpochBase - 5*day), UpdatedAt: epochToTime(mockEpochBase - day),
		},
		{
			ID: "2", Code: "NEWPLAYER", Status: "Paused",
			OfferID: "1", OfferName: "Mobile Gaming CPA - iOS",
			TrackingLink: "https://track.example.com/coupon/2",
			Description:  "First deposit bonus",
			CreatedAt:    epochToTime(mockEpochBase - 20*day), UpdatedAt: epochToTime(mockEpochBase - 4*day),
		},
		{
			ID: "3", Code: "WELLNESS10", Status: "Active",
			OfferID: "4", OfferName: "Health & Wellness CPL",
			TrackingLink: "https://track.example.com/coupon/3",
			Description:  "10% off wellness subscriptions",
			CreatedAt:    epochToTime(mockEpochBase - 12*day), UpdatedAt: epochToTime(mockEpochBase - 2*day),
		},
	}
}

// MockTrafficData returns the sample traffic control view
func MockTrafficData() TrafficData {
	return TrafficData{
		TrafficControls: []TrafficControl{
			{
				ID: "1", Name: "Block incent traffic", Description: "No incentivized sources on finance offers",
				Status: "Active", ControlType: "blocking", ComparisonMethod: "exact",
				Variables: []string{"sub3"},
				ValidFrom: "2024-01-01", ValidTo: "",
			},
			{
				ID: "2", Name: "Geo fence EU", Description: "EU traffic routed to compliant landing pages",
				Status: "Active", ControlType: "routing", IsApplyAllOffers: true, ComparisonMethod: "contains",
				Variables: []string{"country"},
				ValidFrom: "2024-03-15", ValidTo: "",
			},
		},
		BlockedSources: []BlockedSource{
			{
				OfferID: "3", OfferName: "Financial Services Lead Gen", SubID: "src-8841",
				Status:    "Active",
				CreatedAt: epochToTime(mockEpochBase - 14*day), UpdatedAt: epochToTime(mockEpochBase - 14*day),
			},
			{
				OfferID: "1", OfferName: "Mobile Gaming CPA - iOS", SubID: "src-2290",
				Status:    "Active",
				CreatedAt: epochToTime(mockEpochBase - 6*day), UpdatedAt: epochToTime(mockEpochBase - 6*day),
			},
		},
		BlockedVariables: []BlockedVariable{
			{Variable: "sub1", Value: "bot-farm", Operator: "contains"},
			{Variable: "user_agent", Value: "HeadlessChrome", Operator: "contains"},
		},
	}
}

// MockOfferProfits returns the sample profit-by-offer leaderboard
func MockOfferProfits() []ProfitRecord {
	return []ProfitRecord{
		{ID: "OFR-001", Name: "Premium Gaming Offer", Profit: 45230, Revenue: 139170, Payout: 93940, Conversions: 412},
		{ID: "OFR-002", Name: "Health & Wellness", Profit: 38750, Revenue: 119230, Payout: 80480, Conversions: 367},
		{ID: "OFR-003", Name: "Finance CPA", Profit: 32100, Revenue: 98770, Payout: 66670, Conversions: 305},
		{ID: "OFR-004", Name: "E-commerce Deal", Profit: 28900, Revenue: 88920, Payout: 60020, Conversions: 281},
		{ID: "OFR-005", Name: "Travel Booking", Profit: 25600, Revenue: 78770, Payout: 53170, Conversions: 246},
		{ID: "OFR-006", Name: "Education Platform", Profit: 22400, Revenue: 68920, Payout: 46520, Conversions: 214},
		{ID: "OFR-007", Name: "Crypto Exchange", Profit: 19800, Revenue: 60920, Payout: 41120, Conversions: 187},
		{ID: "OFR-008", Name: "Software Suite", Profit: 17300, Revenue: 53230, Payout: 35930, Conversions: 161},
		{ID: "OFR-009", Name: "Dating App", Profit: 15100, Revenue: 46460, Payout: 31360, Conversions: 139},
		{ID: "OFR-010", Name: "Streaming Service", Profit: 12400, Revenue: 38150, Payout: 25750, Conversions: 118},
	}
}

// MockAffiliateProfits returns the sample profit-by-affiliate leaderboard
func MockAffiliateProfits() []ProfitRecord {
	return []ProfitRecord{
		{ID: "AFF-001", Name: "SuperAffiliate Pro", Profit: 52100, Revenue: 160310, Payout: 108210, Conversions: 286},
		{ID: "AFF-002", Name: "Marketing Ninja", Profit: 41200, Revenue: 126770, Payout: 85570, Conversions: 231},
		{ID: "AFF-003", Name: "Digital Dynamo", Profit: 35800, Revenue: 110150, Payout: 74350, Conversions: 204},
		{ID: "AFF-004", Name: "Conversion King", Profit: 31400, Revenue: 96620, Payout: 65220, Conversions: 178},
		{ID: "AFF-005", Name: "Traffic Master", Profit: 28700, Revenue: 88310, Payout: 59610, Conversions: 162},
		{ID: "AFF-006", Name: "Lead Legend", Profit: 24900, Revenue: 76620, Payout: 51720, Conversions: 141},
		{ID: "AFF-007", Name: "Performance Pro", Profit: 22100, Revenue: 68000, Payout: 45900, Conversions: 126},
		{ID: "AFF-008", Name: "Revenue Rocket", Profit: 19600, Revenue: 60310, Payout: 40710, Conversions: 112},
		{ID: "AFF-009", Name: "Growth Guru", Profit: 17800, Revenue: 54770, Payout: 36970, Conversions: 101},
		{ID: "AFF-010", Name: "Scale Specialist", Profit: 15300, Revenue: 47080, Payout: 31780, Conversions: 87},
	}
}

// MockConversions returns a small sample conversion feed referencing the
// mock offers and affiliates
func MockConversions() []ConversionRecord {
	rel := func(offerID int64, offerName string, affID int64, affName string) *ConversionRelationship {
		return &ConversionRelationship{
			Offer:     &RawOfferRef{NetworkOfferID: offerID, Name: offerName},
			Affiliate: &RawAffiliateRef{NetworkAffiliateID: affID, Name: affName},
		}
	}
	return []ConversionRecord{
		{
			ConversionID: "cv-0001", Status: "approved", EventName: "install",
			Revenue: 35.00, Payout: 25.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 2*3600,
			Relationship:            rel(1, "Mobile Gaming CPA - iOS", 101, "SuperAffiliate Pro"),
		},
		{
			ConversionID: "cv-0002", Status: "approved", EventName: "sale",
			Revenue: 25.00, Payout: 15.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 3*3600,
			Relationship:            rel(2, "E-commerce Fashion - RevShare", 102, "Marketing Ninja"),
		},
		{
			ConversionID: "cv-0003", Status: "approved", EventName: "lead",
			Revenue: 65.00, Payout: 45.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 5*3600,
			Relationship:            rel(3, "Financial Services Lead Gen", 101, "SuperAffiliate Pro"),
		},
		{
			ConversionID: "cv-0004", Status: "pending", EventName: "lead",
			Revenue: 65.00, Payout: 45.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 7*3600,
			Relationship:            rel(3, "Financial Services Lead Gen", 103, "Digital Dynamo"),
		},
		{
			ConversionID: "cv-0005", Status: "approved", EventName: "trial",
			Revenue: 14.00, Payout: 8.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 9*3600,
			Relationship:            rel(5, "Streaming Service Trial", 102, "Marketing Ninja"),
		},
		{
			ConversionID: "cv-0006", Status: "approved", EventName: "install",
			Revenue: 35.00, Payout: 25.00, CurrencyID: "USD",
			ConversionUnixTimestamp: mockEpochBase - 11*3600,
			Relationship:            rel(1, "Mobile Gaming CPA - iOS", 103, "Digital Dynamo"),
		},
	}
}

// MockDashboardSummary returns the sample KPI block
func MockDashboardSummary() DashboardSummary {
	return DashboardSummary{
		TotalProfit:      245760,
		TotalRevenue:     756030,
		TotalConversions: 5437,
		ProfitMargin:     32.5,
		Trends: DashboardTrends{
			Profit:      23.84,
			Revenue:     7.82,
			Conversions: 9.86,
			Margin:      4.2,
		},
	}
}

// MockReportingRows returns sample reporting rows grouped by offer
func MockReportingRows() []ReportingRow {
	rows := make([]ReportingRow, 0, 5)
	for i, p := range MockOfferProfits()[:5] {
		clicks := int64((i + 1) * 4200)
		imps := clicks * 30
		rows = append(rows, ReportingRow{
			TotalClicks:    clicks,
			UniqueClicks:   clicks * 8 / 10,
			Conversions:    int64(p.Conversions),
			Payout:         p.Payout,
			Revenue:        p.Revenue,
			Profit:         p.Profit,
			Impressions:    imps,
			ConversionRate: Ratio(float64(p.Conversions)*100, float64(clicks)),
			CTR:            Ratio(float64(clicks)*100, float64(imps)),
			EPC:            Ratio(p.Payout, float64(clicks)),
			RPC:            Ratio(p.Revenue, float64(clicks)),
			Offer:          &Dimension{ID: int64(i + 1), Name: p.Name},
		})
	}
	return rows
}
