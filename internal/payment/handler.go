package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SchoolHub/api-school/internal/duebalance"
	"github.com/SchoolHub/api-school/internal/notify"
	"github.com/SchoolHub/api-school/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler serves the payment routes. Every write runs the whole
// reconciliation (reference checks, totals, detail fan-out, due-balance
// upsert) inside one repository transaction.
type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list payments", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /payments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "payment not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// POST /payments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	var created *Payment
	err := h.Repo.Transaction(func(tx Repository) error {
		p := &Payment{}
		if err := h.reconcile(tx, p, req); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	p, err := h.Repo.FindByID(created.ID)
	if err != nil {
		http.Error(w, "could not load payment", http.StatusInternalServerError)
		return
	}
	notify.SendReceipt(receiptFor(p))
	utils.WriteJSON(w, http.StatusOK, p)
}

// PUT /payments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	if req.ID != 0 && req.ID != uint(id) {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	err = h.Repo.Transaction(func(tx Repository) error {
		existing, err := tx.FindByID(uint(id))
		if err != nil {
			return err
		}
		return h.reconcile(tx, existing, req)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "could not load payment", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// DELETE /payments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "payment not found", http.StatusNotFound)
		return
	}
	err = h.Repo.Transaction(func(tx Repository) error {
		return tx.Delete(p)
	})
	if err != nil {
		http.Error(w, "could not delete payment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reconcile validates the payment's references, derives the monetary fields,
// persists the payment with its detail rows and upserts the student's due
// balance. It must run inside a repository transaction: a returned error
// rolls back every row touched here.
func (h *Handler) reconcile(tx Repository, p *Payment, req *SavePaymentRequest) error {
	st, err := tx.StudentByID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: student %d", ErrInvalidReference, req.StudentID)
		}
		return err
	}
	cf, err := tx.CourseFeeByID(req.CourseFeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: course fee %d", ErrInvalidReference, req.CourseFeeID)
		}
		return err
	}
	months, err := tx.MonthsByIDs(req.AcademicMonthIDs)
	if err != nil {
		return err
	}

	balance, err := tx.DueBalanceForUpdate(req.StudentID)
	if err != nil {
		return err
	}
	previousDue := decimal.Zero
	if balance != nil {
		previousDue = balance.Amount
	}

	totals := ComputeTotals(cf.TotalAmount, len(months), req.Waiver, previousDue, req.AmountPaid)

	p.StudentID = req.StudentID
	p.StudentName = st.Name
	p.CourseFeeID = req.CourseFeeID
	p.Waiver = req.Waiver
	p.AmountPaid = req.AmountPaid
	p.TotalFeeAmount = totals.TotalFeeAmount
	p.PreviousDue = totals.PreviousDue
	p.TotalAmount = totals.TotalAmount
	p.AmountRemaining = totals.AmountRemaining
	if req.PaymentDate != nil {
		p.PaymentDate = *req.PaymentDate
	} else if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}

	if p.ID == 0 {
		if err := tx.Create(p); err != nil {
			return err
		}
	} else {
		if err := tx.Save(p); err != nil {
			return err
		}
	}

	if err := tx.ReplaceDetails(p.ID, ExpandDetails(p.ID, cf.TotalAmount, months)); err != nil {
		return err
	}

	if balance == nil {
		balance = &duebalance.DueBalance{}
	}
	balance.Amount = p.AmountRemaining
	return tx.UpsertDueBalance(p.StudentID, balance)
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*SavePaymentRequest, bool) {
	var req SavePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return nil, false
	}
	if err := utils.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if req.Waiver.IsNegative() || req.Waiver.GreaterThan(decimal.NewFromInt(100)) {
		http.Error(w, "waiver must be between 0 and 100", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "payment not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidReference):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "could not save payment", http.StatusInternalServerError)
	}
}

func receiptFor(p *Payment) notify.Receipt {
	return notify.Receipt{
		PaymentID:       p.ID,
		StudentID:       p.StudentID,
		StudentName:     p.StudentName,
		AmountPaid:      p.AmountPaid.String(),
		AmountRemaining: p.AmountRemaining.String(),
	}
}
