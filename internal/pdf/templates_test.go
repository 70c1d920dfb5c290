package pdf_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/pdf"
)

func testUser() domain.User {
	return domain.User{
		ID:          "1",
		Name:        "John Doe",
		Email:       "john@example.com",
		Address:     "123 Main St, Anytown, AT 12345",
		MeterNumber: "MT12345678",
		Role:        domain.RoleUser,
	}
}

func testBill(paid bool) domain.Bill {
	bill := domain.Bill{
		ID:         "bill-1-0",
		UserID:     "1",
		Month:      "June",
		Year:       2025,
		TotalUsage: 450,
		Amount:     decimal.RequireFromString("54.00"),
		DueDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	if paid {
		paidOn := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		bill.Paid = true
		bill.PaidOn = &paidOn
	}
	return bill
}

func newEngine(t *testing.T) *pdf.TemplateEngine {
	t.Helper()
	engine, err := pdf.NewTemplateEngine(decimal.RequireFromString("0.12"))
	if err != nil {
		t.Fatalf("Failed to create template engine: %v", err)
	}
	return engine
}

func TestRenderBill_Unpaid(t *testing.T) {
	engine := newEngine(t)

	html, err := engine.RenderBill(testBill(false), testUser())
	if err != nil {
		t.Fatalf("RenderBill failed: %v", err)
	}

	for _, want := range []string{
		"EnergyTrack Solutions",
		"ELECTRICITY BILL",
		"bill-1-0",
		"June 2025",
		"John Doe",
		"MT12345678",
		"450 kWh",
		"$0.12/kWh",
		"$54",
		"UNPAID",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Bill document missing %q", want)
		}
	}
	if strings.Contains(html, "Payment Date") {
		t.Error("Unpaid bill must not show a payment date")
	}
}

func TestRenderBill_Paid(t *testing.T) {
	engine := newEngine(t)

	html, err := engine.RenderBill(testBill(true), testUser())
	if err != nil {
		t.Fatalf("RenderBill failed: %v", err)
	}

	if !strings.Contains(html, "PAID") {
		t.Error("Paid bill must show PAID status")
	}
	if !strings.Contains(html, "Jun 20, 2025") {
		t.Error("Paid bill must show the payment date")
	}
}

func TestRenderReceipt(t *testing.T) {
	engine := newEngine(t)
	receipt := domain.Receipt{
		ID:            "receipt-1-0",
		BillID:        "bill-1-0",
		UserID:        "1",
		PaidAmount:    decimal.RequireFromString("54.00"),
		PaidOn:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "Credit Card",
		TransactionID: "TRX-123456",
	}

	html, err := engine.RenderReceipt(receipt, testBill(true), testUser())
	if err != nil {
		t.Fatalf("RenderReceipt failed: %v", err)
	}

	for _, want := range []string{
		"PAYMENT RECEIPT",
		"receipt-1-0",
		"TRX-123456",
		"Credit Card",
		"bill-1-0",
		"PAYMENT SUCCESSFUL",
		"Jun 20, 2025",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Receipt document missing %q", want)
		}
	}
}

func TestDisabledRenderer(t *testing.T) {
	renderer := pdf.DisabledRenderer{}

	_, err := renderer.Render(context.Background(), "<html></html>")

	if err != pdf.ErrDisabled {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}
