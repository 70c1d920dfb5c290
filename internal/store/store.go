// Package store holds the full in-memory collection of users, usage records,
// bills and receipts. It is the single source of truth the services read and
// mutate; all state is volatile and regenerated at startup.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/septivank/energy-billing-service/internal/domain"
)

// Store owns the mutable collections behind accessor methods. Handlers run
// concurrently, so every accessor takes the mutex; MarkBillPaid performs its
// check-and-transition under a single critical section.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	usage    []domain.UsageData
	bills    []domain.Bill
	receipts []domain.Receipt

	billIndex    map[string]int
	receiptIndex map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		billIndex:    make(map[string]int),
		receiptIndex: make(map[string]int),
	}
}

// AddUser appends a user record. Emails are the login key, so registration
// of an already-known email is rejected with domain.ErrDuplicateUser and the
// store is left unchanged.
func (s *Store) AddUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicateUser
		}
	}
	s.users = append(s.users, u)
	return nil
}

// Users returns all user records in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// UserByEmail returns the user registered under the given email. Lookup is
// case-insensitive since emails are the login key.
func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

// AddUsage appends usage records.
func (s *Store) AddUsage(records ...domain.UsageData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = append(s.usage, records...)
}

// UsageForUser returns the usage series for a user in stable insertion order.
// Unknown users get an empty slice, not an error.
func (s *Store) UsageForUser(userID string) []domain.UsageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.UsageData{}
	for _, u := range s.usage {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out
}

// AddBills appends bill records.
func (s *Store) AddBills(bills ...domain.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range bills {
		s.billIndex[b.ID] = len(s.bills)
		s.bills = append(s.bills, b)
	}
}

// BillsForUser returns the bills owned by a user in stable insertion order.
func (s *Store) BillsForUser(userID string) []domain.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Bill{}
	for _, b := range s.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// BillByID returns the bill with the given id.
func (s *Store) BillByID(id string) (domain.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.billIndex[id]
	if !ok {
		return domain.Bill{}, false
	}
	return s.bills[i], true
}

// MarkBillPaid transitions a bill from unpaid to paid, stamping PaidOn.
// It returns domain.ErrNotFound for unknown ids and domain.ErrAlreadyPaid if
// the bill has already been through the transition; in both failure cases the
// store is left unchanged.
func (s *Store) MarkBillPaid(id string, when time.Time) (domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.billIndex[id]
	if !ok {
		return domain.Bill{}, domain.ErrNotFound
	}
	if s.bills[i].Paid {
		return domain.Bill{}, domain.ErrAlreadyPaid
	}
	paidOn := when
	s.bills[i].Paid = true
	s.bills[i].PaidOn = &paidOn
	return s.bills[i], nil
}

// AddReceipts appends receipt records.
func (s *Store) AddReceipts(receipts ...domain.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range receipts {
		s.receiptIndex[r.ID] = len(s.receipts)
		s.receipts = append(s.receipts, r)
	}
}

// ReceiptsForUser returns the receipts owned by a user in insertion order.
func (s *Store) ReceiptsForUser(userID string) []domain.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Receipt{}
	for _, r := range s.receipts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// ReceiptByID returns the receipt with the given id.
func (s *Store) ReceiptByID(id string) (domain.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.receiptIndex[id]
	if !ok {
		return domain.Receipt{}, false
	}
	return s.receipts[i], true
}

// ReceiptForBill returns the receipt referencing the given bill, if any.
func (s *Store) ReceiptForBill(billID string) (domain.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.receipts {
		if r.BillID == billID {
			return r, true
		}
	}
	return domain.Receipt{}, false
}

// Counts reports collection sizes, mainly for startup logging.
func (s *Store) Counts() (users, usage, bills, receipts int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.usage), len(s.bills), len(s.receipts)
}
