// Package stats computes derived aggregates over usage and bill records.
// Every function is pure and recomputed from the current store state on
// demand; nothing here is cached.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/domain"
)

// TotalUsage sums kWh over the supplied window.
func TotalUsage(data []domain.UsageData) float64 {
	total := 0.0
	for _, d := range data {
		total += d.KWh
	}
	return total
}

// AverageDailyUsage is total kWh divided by the number of days. An empty
// window yields 0, never NaN.
func AverageDailyUsage(data []domain.UsageData) float64 {
	if len(data) == 0 {
		return 0
	}
	return TotalUsage(data) / float64(len(data))
}

// PeakUsageRatio is the share of peak-hour consumption in total peak plus
// off-peak consumption, as a percentage. A window with zero total hours
// yields 0.
func PeakUsageRatio(data []domain.UsageData) float64 {
	peak := 0.0
	offPeak := 0.0
	for _, d := range data {
		peak += d.PeakHours
		offPeak += d.OffPeakHours
	}
	if peak+offPeak == 0 {
		return 0
	}
	return peak / (peak + offPeak) * 100
}

// MinMaxUsage returns the lowest and highest daily kWh in the window.
// Both are 0 for an empty window.
func MinMaxUsage(data []domain.UsageData) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max = data[0].KWh, data[0].KWh
	for _, d := range data[1:] {
		if d.KWh < min {
			min = d.KWh
		}
		if d.KWh > max {
			max = d.KWh
		}
	}
	return min, max
}

// HighestUsageDay returns the record with the highest kWh in the window.
func HighestUsageDay(data []domain.UsageData) (domain.UsageData, bool) {
	if len(data) == 0 {
		return domain.UsageData{}, false
	}
	best := data[0]
	for _, d := range data[1:] {
		if d.KWh > best.KWh {
			best = d
		}
	}
	return best, true
}

// AmountDue sums the amounts of unpaid bills.
func AmountDue(bills []domain.Bill) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if !b.Paid {
			total = total.Add(b.Amount)
		}
	}
	return total
}

// AmountPaid sums the amounts of paid bills.
func AmountPaid(bills []domain.Bill) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if b.Paid {
			total = total.Add(b.Amount)
		}
	}
	return total
}

// Summary bundles the dashboard aggregates for one user.
type Summary struct {
	TotalUsage        float64         `json:"totalUsage"`
	AverageDailyUsage float64         `json:"averageDailyUsage"`
	PeakUsageRatio    float64         `json:"peakUsageRatio"`
	MinUsage          float64         `json:"minUsage"`
	MaxUsage          float64         `json:"maxUsage"`
	AmountDue         decimal.Decimal `json:"amountDue"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
}

// Summarize computes the full dashboard summary from a usage window and the
// user's bills.
func Summarize(data []domain.UsageData, bills []domain.Bill) Summary {
	min, max := MinMaxUsage(data)
	return Summary{
		TotalUsage:        TotalUsage(data),
		AverageDailyUsage: AverageDailyUsage(data),
		PeakUsageRatio:    PeakUsageRatio(data),
		MinUsage:          min,
		MaxUsage:          max,
		AmountDue:         AmountDue(bills),
		AmountPaid:        AmountPaid(bills),
	}
}
