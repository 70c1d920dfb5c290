package seed_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/config"
	"github.com/septivank/energy-billing-service/internal/seed"
)

func newGenerator(t *testing.T) *seed.Generator {
	t.Helper()
	g, err := seed.NewGenerator(config.BillingConfig{UnitRate: "0.12", UsageDays: 30, BillMonths: 6})
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	return g
}

func TestNewGenerator_InvalidRate(t *testing.T) {
	_, err := seed.NewGenerator(config.BillingConfig{UnitRate: "cheap", UsageDays: 30, BillMonths: 6})

	if err == nil {
		t.Error("Expected error for unparseable unit rate")
	}
}

func TestUsageSeries(t *testing.T) {
	g := newGenerator(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	series := g.UsageSeries("1", now)

	if len(series) != 30 {
		t.Fatalf("Expected 30 usage records, got %d", len(series))
	}
	for i, u := range series {
		if u.UserID != "1" {
			t.Errorf("Record %d owned by %s, expected 1", i, u.UserID)
		}
		if u.KWh < 8 || u.KWh > 25 {
			t.Errorf("Record %d kWh %v outside 8-25", i, u.KWh)
		}
		if u.PeakHours < 5 || u.PeakHours > 12 {
			t.Errorf("Record %d peak %v outside 5-12", i, u.PeakHours)
		}
		if u.OffPeakHours < 3 || u.OffPeakHours > 10 {
			t.Errorf("Record %d off-peak %v outside 3-10", i, u.OffPeakHours)
		}
	}
	if !series[0].Date.Equal(now) {
		t.Errorf("Expected newest record dated %v, got %v", now, series[0].Date)
	}
}

func TestBillSeries(t *testing.T) {
	g := newGenerator(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("0.12")

	bills := g.BillSeries("1", now)

	if len(bills) != 6 {
		t.Fatalf("Expected 6 bills, got %d", len(bills))
	}

	if bills[0].Paid {
		t.Error("Current month bill must start unpaid")
	}
	if bills[0].PaidOn != nil {
		t.Error("Unpaid bill must not carry PaidOn")
	}
	if bills[0].Month != "June" || bills[0].Year != 2025 {
		t.Errorf("Expected June 2025, got %s %d", bills[0].Month, bills[0].Year)
	}

	for i, b := range bills {
		if b.TotalUsage < 240 || b.TotalUsage > 450 {
			t.Errorf("Bill %d usage %v outside 240-450", i, b.TotalUsage)
		}
		expected := decimal.NewFromFloat(b.TotalUsage).Mul(rate)
		if !b.Amount.Equal(expected) {
			t.Errorf("Bill %d amount %s, expected %s", i, b.Amount, expected)
		}
		// PaidOn present if and only if paid
		if b.Paid && b.PaidOn == nil {
			t.Errorf("Bill %d paid without PaidOn", i)
		}
		if !b.Paid && b.PaidOn != nil {
			t.Errorf("Bill %d unpaid with PaidOn", i)
		}
		if i > 0 && !b.Paid {
			t.Errorf("Bill %d from an older month must be pre-paid", i)
		}
	}
}

func TestReceipts_OnePerPaidBill(t *testing.T) {
	g := newGenerator(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	bills := g.BillSeries("1", now)

	receipts := g.Receipts("1", bills)

	if len(receipts) != 5 {
		t.Fatalf("Expected 5 receipts for 5 paid bills, got %d", len(receipts))
	}

	seen := map[string]bool{}
	for _, r := range receipts {
		if seen[r.BillID] {
			t.Errorf("Bill %s has more than one receipt", r.BillID)
		}
		seen[r.BillID] = true
		if r.PaymentMethod != "Credit Card" && r.PaymentMethod != "Bank Transfer" {
			t.Errorf("Unexpected payment method %s", r.PaymentMethod)
		}
	}
}

func TestHousehold(t *testing.T) {
	g := newGenerator(t)

	user := g.Household(time.Now())

	if user.ID == "" || user.Name == "" || user.Email == "" {
		t.Errorf("Expected populated household, got %+v", user)
	}
	if len(user.MeterNumber) != 10 || user.MeterNumber[:2] != "MT" {
		t.Errorf("Expected MT-prefixed meter number, got %s", user.MeterNumber)
	}
}

func TestDemoUsers(t *testing.T) {
	users := seed.DemoUsers(time.Now())

	if len(users) != 3 {
		t.Fatalf("Expected 3 demo users, got %d", len(users))
	}
	admins := 0
	for _, u := range users {
		if u.IsAdmin() {
			admins++
		}
	}
	if admins != 1 {
		t.Errorf("Expected exactly 1 admin demo user, got %d", admins)
	}
}
