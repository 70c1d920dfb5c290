// Package seed generates the synthetic households, usage series and billing
// history the service is booted with. Registration reuses the same generator
// to provision data for fresh accounts.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/config"
	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/tools/txid"
)

// Generator produces usage, bill and receipt series for a user. The tariff
// and series lengths come from billing configuration.
type Generator struct {
	rate       decimal.Decimal
	usageDays  int
	billMonths int
	faker      *gofakeit.Faker
}

// NewGenerator creates a generator for the configured tariff.
func NewGenerator(cfg config.BillingConfig) (*Generator, error) {
	rate, err := decimal.NewFromString(cfg.UnitRate)
	if err != nil {
		return nil, fmt.Errorf("invalid billing unit rate %q: %w", cfg.UnitRate, err)
	}
	return &Generator{
		rate:       rate,
		usageDays:  cfg.UsageDays,
		billMonths: cfg.BillMonths,
		faker:      gofakeit.New(0),
	}, nil
}

// UnitRate returns the configured price per kWh.
func (g *Generator) UnitRate() decimal.Decimal {
	return g.rate
}

// UsageSeries generates one daily usage record per day, counting back from
// now. Daily kWh and the peak/off-peak split are drawn independently, so the
// split does not necessarily sum to the daily total.
func (g *Generator) UsageSeries(userID string, now time.Time) []domain.UsageData {
	series := make([]domain.UsageData, 0, g.usageDays)
	for i := 0; i < g.usageDays; i++ {
		date := now.AddDate(0, 0, -i)
		series = append(series, domain.UsageData{
			ID:           fmt.Sprintf("usage-%s-%d", userID, i),
			UserID:       userID,
			Date:         date,
			KWh:          float64(g.faker.Number(8, 25)),
			PeakHours:    float64(g.faker.Number(5, 12)),
			OffPeakHours: float64(g.faker.Number(3, 10)),
		})
	}
	return series
}

// BillSeries generates one monthly bill per month, newest first. Every bill
// except the current month is pre-marked paid with a payment date a few days
// after the billing period opened.
func (g *Generator) BillSeries(userID string, now time.Time) []domain.Bill {
	bills := make([]domain.Bill, 0, g.billMonths)
	for i := 0; i < g.billMonths; i++ {
		date := now.AddDate(0, -i, 0)
		totalUsage := g.faker.Number(240, 450)
		bill := domain.Bill{
			ID:         fmt.Sprintf("bill-%s-%d", userID, i),
			UserID:     userID,
			Month:      date.Month().String(),
			Year:       date.Year(),
			TotalUsage: float64(totalUsage),
			Amount:     decimal.NewFromInt(int64(totalUsage)).Mul(g.rate),
			DueDate:    date.AddDate(0, 0, 15),
		}
		if i > 0 {
			paidOn := date.AddDate(0, 0, g.faker.Number(5, 12))
			bill.Paid = true
			bill.PaidOn = &paidOn
		}
		bills = append(bills, bill)
	}
	return bills
}

// Receipts generates one receipt per paid bill in the supplied series,
// alternating payment methods the way the historical data did.
func (g *Generator) Receipts(userID string, bills []domain.Bill) []domain.Receipt {
	receipts := []domain.Receipt{}
	for _, bill := range bills {
		if !bill.Paid {
			continue
		}
		method := "Credit Card"
		if len(receipts)%2 == 1 {
			method = "Bank Transfer"
		}
		receipts = append(receipts, domain.Receipt{
			ID:            fmt.Sprintf("receipt-%s-%d", userID, len(receipts)),
			BillID:        bill.ID,
			UserID:        userID,
			PaidAmount:    bill.Amount,
			PaidOn:        *bill.PaidOn,
			PaymentMethod: method,
			TransactionID: txid.New(),
		})
	}
	return receipts
}

// Household generates a random registered household account.
func (g *Generator) Household(now time.Time) domain.User {
	person := g.faker.Person()
	addr := g.faker.Address()
	return domain.User{
		ID:          uuid.NewString(),
		Name:        person.FirstName + " " + person.LastName,
		Email:       person.Contact.Email,
		Address:     fmt.Sprintf("%s, %s, %s %s", addr.Street, addr.City, addr.State, addr.Zip),
		MeterNumber: fmt.Sprintf("MT%08d", g.faker.Number(0, 99999999)),
		Role:        domain.RoleUser,
		CreatedAt:   now,
	}
}

// DemoUsers returns the fixed demo accounts seeded at startup.
func DemoUsers(now time.Time) []domain.User {
	return []domain.User{
		{
			ID:          "1",
			Name:        "John Doe",
			Email:       "john@example.com",
			Address:     "123 Main St, Anytown, AT 12345",
			MeterNumber: "MT12345678",
			Role:        domain.RoleUser,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Email:       "jane@example.com",
			Address:     "456 Oak Ave, Somewhere, SM 67890",
			MeterNumber: "MT87654321",
			Role:        domain.RoleUser,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Admin User",
			Email:       "admin@example.com",
			Address:     "789 Admin Blvd, Adminville, AD 99999",
			MeterNumber: "MT99999999",
			Role:        domain.RoleAdmin,
			CreatedAt:   now,
		},
	}
}
