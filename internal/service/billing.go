package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/events"
	"github.com/septivank/energy-billing-service/internal/logging"
	"github.com/septivank/energy-billing-service/internal/seed"
	"github.com/septivank/energy-billing-service/internal/stats"
	"github.com/septivank/energy-billing-service/internal/store"
	"github.com/septivank/energy-billing-service/tools/txid"
)

// Delay simulates upstream latency on user-facing operations. It must honor
// context cancellation so tests and shutdowns do not wait it out.
type Delay func(ctx context.Context)

// NewDelay builds a context-aware sleep of the given duration. A
// non-positive duration yields a no-op, which is what tests inject.
func NewDelay(d time.Duration) Delay {
	if d <= 0 {
		return func(context.Context) {}
	}
	return func(ctx context.Context) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}

// BillingService answers usage/billing queries and performs the one mutation
// of the domain: paying a bill.
type BillingService struct {
	store     *store.Store
	generator *seed.Generator
	publisher events.Publisher
	delay     Delay
	logger    *zap.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(
	st *store.Store,
	generator *seed.Generator,
	publisher events.Publisher,
	delay Delay,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		store:     st,
		generator: generator,
		publisher: publisher,
		delay:     delay,
		logger:    logger,
	}
}

// UsageFor returns the usage series for a user. Unknown users get an empty
// series, not an error.
func (s *BillingService) UsageFor(userID string) []domain.UsageData {
	return s.store.UsageForUser(userID)
}

// BillsFor returns the bills owned by a user.
func (s *BillingService) BillsFor(userID string) []domain.Bill {
	return s.store.BillsForUser(userID)
}

// ReceiptsFor returns the receipts owned by a user.
func (s *BillingService) ReceiptsFor(userID string) []domain.Receipt {
	return s.store.ReceiptsForUser(userID)
}

// BillByID returns a single bill, or domain.ErrNotFound.
func (s *BillingService) BillByID(id string) (domain.Bill, error) {
	bill, ok := s.store.BillByID(id)
	if !ok {
		return domain.Bill{}, domain.ErrNotFound
	}
	return bill, nil
}

// ReceiptByID returns a single receipt, or domain.ErrNotFound.
func (s *BillingService) ReceiptByID(id string) (domain.Receipt, error) {
	receipt, ok := s.store.ReceiptByID(id)
	if !ok {
		return domain.Receipt{}, domain.ErrNotFound
	}
	return receipt, nil
}

// Summary recomputes the dashboard aggregates for a user from current store
// state.
func (s *BillingService) Summary(userID string) stats.Summary {
	return stats.Summarize(s.store.UsageForUser(userID), s.store.BillsForUser(userID))
}

// PayBill transitions the bill to paid, stamped with the current date, and
// appends exactly one receipt carrying the bill's amount at payment time.
// It returns domain.ErrNotFound for unknown bills and domain.ErrAlreadyPaid
// when the bill has already been settled; neither failure mutates the store.
func (s *BillingService) PayBill(ctx context.Context, billID, paymentMethod string) (domain.Receipt, error) {
	s.delay(ctx)

	now := time.Now()
	bill, err := s.store.MarkBillPaid(billID, now)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{
		ID:            uuid.NewString(),
		BillID:        bill.ID,
		UserID:        bill.UserID,
		PaidAmount:    bill.Amount,
		PaidOn:        now,
		PaymentMethod: paymentMethod,
		TransactionID: txid.New(),
	}
	s.store.AddReceipts(receipt)

	// Publish after the store mutation; a broker failure never rolls back
	// an applied payment.
	event := events.PaymentEvent{
		BillID:        receipt.BillID,
		UserID:        receipt.UserID,
		PaidAmount:    receipt.PaidAmount.StringFixed(2),
		PaidOn:        receipt.PaidOn.Format(time.RFC3339),
		PaymentMethod: receipt.PaymentMethod,
		TransactionID: receipt.TransactionID,
	}
	if err := s.publisher.PublishPaymentCompleted(ctx, event); err != nil {
		s.logger.Error("failed to publish payment event",
			zap.Error(err),
			zap.String("bill_id", receipt.BillID),
		)
	}

	logging.WithUserID(s.logger, bill.UserID).Info("bill paid",
		zap.String("bill_id", bill.ID),
		zap.String("transaction_id", receipt.TransactionID),
		zap.String("amount", receipt.PaidAmount.StringFixed(2)),
		zap.String("payment_method", paymentMethod),
	)

	return receipt, nil
}

// ProvisionUser bulk-seeds the usage series and billing history for a newly
// registered user. Bills older than the current month arrive pre-paid with
// matching receipts.
func (s *BillingService) ProvisionUser(user domain.User) {
	now := time.Now()
	usage := s.generator.UsageSeries(user.ID, now)
	bills := s.generator.BillSeries(user.ID, now)
	receipts := s.generator.Receipts(user.ID, bills)

	s.store.AddUsage(usage...)
	s.store.AddBills(bills...)
	s.store.AddReceipts(receipts...)

	logging.WithUserID(s.logger, user.ID).Info("provisioned user data",
		zap.Int("usage_records", len(usage)),
		zap.Int("bills", len(bills)),
		zap.Int("receipts", len(receipts)),
	)
}
