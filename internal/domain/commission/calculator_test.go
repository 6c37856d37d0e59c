package commission

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestBaseCommissionRate(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		saleType entity.SaleType
		expected string
	}{
		{name: "DEED below 20000", amount: "19999", saleType: entity.SaleTypeDeed, expected: "4"},
		{name: "DEED at 20000", amount: "20000", saleType: entity.SaleTypeDeed, expected: "5"},
		{name: "DEED at 49999", amount: "49999", saleType: entity.SaleTypeDeed, expected: "5"},
		{name: "DEED at 49999.99", amount: "49999.99", saleType: entity.SaleTypeDeed, expected: "5"},
		{name: "DEED at 50000", amount: "50000", saleType: entity.SaleTypeDeed, expected: "6"},
		{name: "DEED zero amount", amount: "0", saleType: entity.SaleTypeDeed, expected: "4"},
		{name: "TRUST small amount", amount: "1000", saleType: entity.SaleTypeTrust, expected: "6"},
		{name: "TRUST at 19999", amount: "19999", saleType: entity.SaleTypeTrust, expected: "6"},
		{name: "TRUST large amount", amount: "250000", saleType: entity.SaleTypeTrust, expected: "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseCommissionRate(d(tt.amount), tt.saleType)
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTotalCommissionRate_UsesVolumeIncludingSale(t *testing.T) {
	// 150000 before the sale, 20000 sale lands on 170000 (tier 1).
	got := TotalCommissionRate(d("20000"), d("170000"), entity.SaleTypeDeed)
	if !got.Equal(d("6")) {
		t.Errorf("expected 5 + 1 = 6, got %s", got)
	}

	// Same sale without reaching the first tier.
	got = TotalCommissionRate(d("20000"), d("160000"), entity.SaleTypeDeed)
	if !got.Equal(d("5")) {
		t.Errorf("expected 5, got %s", got)
	}

	got = TotalCommissionRate(d("60000"), d("420000"), entity.SaleTypeTrust)
	if !got.Equal(d("9.5")) {
		t.Errorf("expected 6 + 3.5 = 9.5, got %s", got)
	}
}

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		amount   string
		rate     string
		expected string
	}{
		{amount: "25000", rate: "5", expected: "1250"},
		{amount: "33333.33", rate: "9.5", expected: "3166.67"},
		{amount: "0", rate: "6", expected: "0"},
		{amount: "12345.67", rate: "4", expected: "493.83"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"@"+tt.rate, func(t *testing.T) {
			got := CommissionAmount(d(tt.amount), d(tt.rate))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFDIPoints(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "10000", expected: "5500"},
		{amount: "12345.67", expected: "6790.12"},
		{amount: "0.01", expected: "0.01"},
		{amount: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := FDIPoints(d(tt.amount))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFDICost(t *testing.T) {
	tests := []struct {
		name     string
		given    string
		allowed  string
		expected string
	}{
		{name: "no points given", given: "0", allowed: "5500", expected: "0"},
		{name: "below allowance", given: "5000", allowed: "5500", expected: "0"},
		{name: "exactly the allowance", given: "5500", allowed: "5500", expected: "0"},
		{name: "1000 above allowance", given: "6500", allowed: "5500", expected: "48"},
		{name: "one point above allowance", given: "5501", allowed: "5500", expected: "0.05"},
		{name: "fractional excess", given: "5510.5", allowed: "5500", expected: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FDICost(d(tt.given), d(tt.allowed))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			if got.IsNegative() {
				t.Errorf("FDI cost must never be negative, got %s", got)
			}
		})
	}
}

func TestDailyVPG(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		tours    int
		expected string
	}{
		{name: "zero tours", amount: "25000", tours: 0, expected: "0"},
		{name: "even split", amount: "30000", tours: 3, expected: "10000"},
		{name: "repeating decimal", amount: "10000", tours: 3, expected: "3333.33"},
		{name: "rounds half up", amount: "0.05", tours: 2, expected: "0.03"},
		{name: "two thirds", amount: "20000", tours: 3, expected: "6666.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyVPG(d(tt.amount), tt.tours)
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPeriodVPG(t *testing.T) {
	if got := PeriodVPG(d("60000"), 0); !got.IsZero() {
		t.Errorf("expected zero VPG with no tours, got %s", got)
	}
	if got := PeriodVPG(d("60000"), 7); !got.Equal(d("8571.43")) {
		t.Errorf("expected 8571.43, got %s", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "1.005", expected: "1.01"},
		{in: "1.004", expected: "1"},
		{in: "2.675", expected: "2.68"},
		{in: "-1.005", expected: "-1.01"},
		{in: "100", expected: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Round2(d(tt.in)); !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	quote := Quote(QuoteInput{
		SaleAmount:     d("25000"),
		SaleType:       entity.SaleTypeDeed,
		NumberOfTours:  4,
		FDIGivenPoints: d("14750"),
		PriorVolume:    d("150000"),
	})

	checks := []struct {
		field    string
		got      decimal.Decimal
		expected string
	}{
		{field: "CumulativeVolume", got: quote.CumulativeVolume, expected: "175000"},
		{field: "BaseRate", got: quote.BaseRate, expected: "5"},
		{field: "AdditionalRate", got: quote.AdditionalRate, expected: "1"},
		{field: "TotalRate", got: quote.TotalRate, expected: "6"},
		{field: "CommissionAmount", got: quote.CommissionAmount, expected: "1500"},
		{field: "FDIPoints", got: quote.FDIPoints, expected: "13750"},
		{field: "FDIAllowedPoints", got: quote.FDIAllowedPoints, expected: "13750"},
		{field: "FDICost", got: quote.FDICost, expected: "48"},
		{field: "DailyVPG", got: quote.DailyVPG, expected: "6250"},
	}
	for _, c := range checks {
		if !c.got.Equal(d(c.expected)) {
			t.Errorf("%s: expected %s, got %s", c.field, c.expected, c.got)
		}
	}

	if quote.Tier == nil || quote.Tier.Level != 1 {
		t.Errorf("expected tier 1, got %+v", quote.Tier)
	}

	snapshot := quote.Snapshot()
	if !snapshot.CommissionPercentage.Equal(d("6")) || !snapshot.CommissionAmount.Equal(d("1500")) {
		t.Errorf("snapshot does not carry the quoted commission: %+v", snapshot)
	}
}

func TestQuote_BelowFirstTierHasNoTier(t *testing.T) {
	quote := Quote(QuoteInput{
		SaleAmount:  d("10000"),
		SaleType:    entity.SaleTypeTrust,
		PriorVolume: decimal.Zero,
	})
	if quote.Tier != nil {
		t.Errorf("expected no tier, got level %d", quote.Tier.Level)
	}
	if !quote.TotalRate.Equal(d("6")) {
		t.Errorf("expected total rate 6, got %s", quote.TotalRate)
	}
	if !quote.DailyVPG.IsZero() {
		t.Errorf("expected zero daily VPG with no tours, got %s", quote.DailyVPG)
	}
}
