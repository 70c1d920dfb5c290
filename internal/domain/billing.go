package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageData is one day's electricity consumption for one user.
// KWh and the peak/off-peak split come from independent meter channels
// and are not required to sum up.
type UsageData struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Date         time.Time `json:"date"`
	KWh          float64   `json:"kWh"`
	PeakHours    float64   `json:"peakHours"`
	OffPeakHours float64   `json:"offPeakHours"`
}

// Bill is a monthly charge record for one user. It is created unpaid and
// transitions to paid exactly once; PaidOn is set if and only if Paid is true.
type Bill struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Month      string          `json:"month"`
	Year       int             `json:"year"`
	TotalUsage float64         `json:"totalUsage"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	Paid       bool            `json:"paid"`
	PaidOn     *time.Time      `json:"paidOn,omitempty"`
}

// Receipt is the proof-of-payment record created once per paid bill.
// PaidAmount is the bill amount at the moment of payment, copied verbatim.
type Receipt struct {
	ID            string          `json:"id"`
	BillID        string          `json:"billId"`
	UserID        string          `json:"userId"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaidOn        time.Time       `json:"paidOn"`
	PaymentMethod string          `json:"paymentMethod"`
	TransactionID string          `json:"transactionId"`
}
