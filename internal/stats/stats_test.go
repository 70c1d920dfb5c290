package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/stats"
)

func usageWindow() []domain.UsageData {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []domain.UsageData{
		{ID: "u1", UserID: "1", Date: day, KWh: 10, PeakHours: 6, OffPeakHours: 4},
		{ID: "u2", UserID: "1", Date: day.AddDate(0, 0, 1), KWh: 20, PeakHours: 9, OffPeakHours: 3},
		{ID: "u3", UserID: "1", Date: day.AddDate(0, 0, 2), KWh: 15, PeakHours: 5, OffPeakHours: 8},
	}
}

func TestTotalUsage(t *testing.T) {
	total := stats.TotalUsage(usageWindow())

	if total != 45 {
		t.Errorf("Expected total usage 45, got %v", total)
	}
}

func TestAverageDailyUsage(t *testing.T) {
	avg := stats.AverageDailyUsage(usageWindow())

	if avg != 15 {
		t.Errorf("Expected average daily usage 15, got %v", avg)
	}
}

func TestAverageDailyUsage_EmptyWindow(t *testing.T) {
	avg := stats.AverageDailyUsage(nil)

	// Must be 0, never NaN or a panic
	if avg != 0 {
		t.Errorf("Expected 0 for empty window, got %v", avg)
	}
}

func TestPeakUsageRatio(t *testing.T) {
	ratio := stats.PeakUsageRatio(usageWindow())

	// peak 20 of 35 total hours
	expected := 20.0 / 35.0 * 100
	if ratio != expected {
		t.Errorf("Expected peak ratio %v, got %v", expected, ratio)
	}
}

func TestPeakUsageRatio_ZeroHours(t *testing.T) {
	data := []domain.UsageData{
		{ID: "u1", UserID: "1", KWh: 10, PeakHours: 0, OffPeakHours: 0},
	}

	ratio := stats.PeakUsageRatio(data)

	if ratio != 0 {
		t.Errorf("Expected 0 ratio for zero total hours, got %v", ratio)
	}
}

func TestMinMaxUsage(t *testing.T) {
	min, max := stats.MinMaxUsage(usageWindow())

	if min != 10 {
		t.Errorf("Expected min 10, got %v", min)
	}
	if max != 20 {
		t.Errorf("Expected max 20, got %v", max)
	}
}

func TestMinMaxUsage_EmptyWindow(t *testing.T) {
	min, max := stats.MinMaxUsage(nil)

	if min != 0 || max != 0 {
		t.Errorf("Expected 0/0 for empty window, got %v/%v", min, max)
	}
}

func TestHighestUsageDay(t *testing.T) {
	best, ok := stats.HighestUsageDay(usageWindow())

	if !ok {
		t.Fatal("Expected a highest usage day")
	}
	if best.ID != "u2" {
		t.Errorf("Expected highest day u2, got %s", best.ID)
	}
}

func TestAmountDueAndPaid(t *testing.T) {
	bills := []domain.Bill{
		{ID: "b1", Amount: decimal.RequireFromString("54.00"), Paid: false},
		{ID: "b2", Amount: decimal.RequireFromString("30.12"), Paid: true},
		{ID: "b3", Amount: decimal.RequireFromString("41.88"), Paid: true},
	}

	due := stats.AmountDue(bills)
	paid := stats.AmountPaid(bills)

	if !due.Equal(decimal.RequireFromString("54.00")) {
		t.Errorf("Expected amount due 54.00, got %s", due)
	}
	if !paid.Equal(decimal.RequireFromString("72.00")) {
		t.Errorf("Expected amount paid 72.00, got %s", paid)
	}
}

func TestSummarize_EmptyStore(t *testing.T) {
	summary := stats.Summarize(nil, nil)

	if summary.TotalUsage != 0 || summary.AverageDailyUsage != 0 || summary.PeakUsageRatio != 0 {
		t.Errorf("Expected zeroed usage summary, got %+v", summary)
	}
	if !summary.AmountDue.IsZero() || !summary.AmountPaid.IsZero() {
		t.Errorf("Expected zero amounts, got due=%s paid=%s", summary.AmountDue, summary.AmountPaid)
	}
}
