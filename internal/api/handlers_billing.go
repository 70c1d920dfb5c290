package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/septivank/energy-billing-service/internal/domain"
)

type payRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	s.json(w, http.StatusOK, s.billing.UsageFor(claims.UserID))
}

func (s *Server) handleUsageSummary(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	s.json(w, http.StatusOK, s.billing.Summary(claims.UserID))
}

func (s *Server) handleBills(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	s.json(w, http.StatusOK, s.billing.BillsFor(claims.UserID))
}

// billForRequest loads a bill and enforces ownership. Other users' bills are
// reported as not found rather than forbidden.
func (s *Server) billForRequest(r *http.Request) (domain.Bill, error) {
	claims := sessionFrom(r.Context())
	bill, err := s.billing.BillByID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.Bill{}, err
	}
	if bill.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		return domain.Bill{}, domain.ErrNotFound
	}
	return bill, nil
}

func (s *Server) handleBillByID(w http.ResponseWriter, r *http.Request) {
	bill, err := s.billForRequest(r)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusOK, bill)
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	// Ownership first, so paying someone else's bill is indistinguishable
	// from paying a missing one.
	if _, err := s.billForRequest(r); err != nil {
		s.domainError(w, err)
		return
	}

	receipt, err := s.billing.PayBill(r.Context(), chi.URLParam(r, "id"), req.PaymentMethod)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusOK, receipt)
}

func (s *Server) handleReceipts(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	s.json(w, http.StatusOK, s.billing.ReceiptsFor(claims.UserID))
}

func (s *Server) receiptForRequest(r *http.Request) (domain.Receipt, error) {
	claims := sessionFrom(r.Context())
	receipt, err := s.billing.ReceiptByID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.Receipt{}, err
	}
	if receipt.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		return domain.Receipt{}, domain.ErrNotFound
	}
	return receipt, nil
}

func (s *Server) handleReceiptByID(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.receiptForRequest(r)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusOK, receipt)
}

func (s *Server) handleBillPDF(w http.ResponseWriter, r *http.Request) {
	bill, err := s.billForRequest(r)
	if err != nil {
		s.domainError(w, err)
		return
	}
	user, err := s.auth.CurrentUser(bill.UserID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	html, err := s.engine.RenderBill(bill, user)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.servePDF(w, r, html, fmt.Sprintf("bill-%s.pdf", bill.ID))
}

func (s *Server) handleReceiptPDF(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.receiptForRequest(r)
	if err != nil {
		s.domainError(w, err)
		return
	}
	bill, err := s.billing.BillByID(receipt.BillID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	user, err := s.auth.CurrentUser(receipt.UserID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	html, err := s.engine.RenderReceipt(receipt, bill, user)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.servePDF(w, r, html, fmt.Sprintf("receipt-%s.pdf", receipt.ID))
}

func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, html, filename string) {
	data, err := s.renderer.Render(r.Context(), html)
	if err != nil {
		s.domainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("failed to write pdf response")
	}
}
