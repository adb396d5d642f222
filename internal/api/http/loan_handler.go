package http

import (
	"net/http"
	"strconv"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

type createLoanRequest struct {
	UserID   string `json:"user_id"`
	Barcode  string `json:"barcode"`
	LoanDays int32  `json:"loan_days"`
}

// CreateLoan checks borrowing eligibility before lending. The check and the
// create are not atomic; a fine issued in between slips through, which is
// accepted for this release.
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	eligible, err := h.loanSvc.CanUserBorrow(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !eligible {
		writeError(w, domain.NewError(domain.KindFailedPrecondition, "user has unpaid fines and cannot borrow"))
		return
	}

	loan, err := h.loanSvc.CreateLoan(r.Context(), req.UserID, req.Barcode, req.LoanDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

type updateLoanRequest struct {
	ExpectedReturnDate string `json:"expected_return_date"` // YYYY-MM-DD
}

func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	date, err := time.Parse("2006-01-02", req.ExpectedReturnDate)
	if err != nil {
		writeError(w, domain.NewError(domain.KindInvalidArgument, "expected_return_date must be YYYY-MM-DD"))
		return
	}

	loan, err := h.loanSvc.UpdateLoan(r.Context(), id, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

type returnBookRequest struct {
	Barcode string `json:"barcode"`
}

func (h *LoanHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	var req returnBookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.loanSvc.ReturnBook(r.Context(), req.Barcode)
	if err != nil {
		if summary != nil {
			// The return went through; report the partial success instead of
			// hiding it behind a 500.
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"summary": summary,
				"warning": "return recorded but fine processing failed",
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	loan, err := h.loanSvc.GetLoanByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) ListUserLoans(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	loans, err := h.loanSvc.GetAllLoansByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) CanBorrow(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	eligible, err := h.loanSvc.CanUserBorrow(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"can_borrow": eligible})
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Errorf(domain.KindInvalidArgument, "invalid %s %q", name, raw)
	}
	return int32(id), nil
}
