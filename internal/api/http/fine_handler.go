package http

import (
	"net/http"

	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type FineHandler struct {
	fineSvc     service.FineService
	fineTypeSvc service.FineTypeService
}

func NewFineHandler(fineSvc service.FineService, fineTypeSvc service.FineTypeService) *FineHandler {
	return &FineHandler{fineSvc: fineSvc, fineTypeSvc: fineTypeSvc}
}

type addFineRequest struct {
	UserID      string `json:"user_id"`
	FineTypeID  int32  `json:"fine_type_id"`
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

func (h *FineHandler) AddFine(w http.ResponseWriter, r *http.Request) {
	var req addFineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	fine, err := h.fineSvc.AddFine(r.Context(), req.UserID, req.FineTypeID, req.AmountCents, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fine)
}

func (h *FineHandler) PayFine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	fine, err := h.fineSvc.PayFine(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fine)
}

func (h *FineHandler) RevokeFine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	fine, err := h.fineSvc.RevokeFine(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fine)
}

func (h *FineHandler) ListUserFines(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	fines, err := h.fineSvc.GetUserFinesByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fines)
}

// ListFinesByEmail serves the front-desk lookup: ?email=member@example.com.
func (h *FineHandler) ListFinesByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	fines, err := h.fineSvc.GetUserFinesByEmail(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fines)
}

type fineTypeRequest struct {
	Name           string `json:"name"`
	DailyRateCents int64  `json:"daily_rate_cents"`
}

func (h *FineHandler) AddFineType(w http.ResponseWriter, r *http.Request) {
	var req fineTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ft, err := h.fineTypeSvc.AddFineType(r.Context(), req.Name, req.DailyRateCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ft)
}

func (h *FineHandler) UpdateFineType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req fineTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ft, err := h.fineTypeSvc.UpdateFineType(r.Context(), id, req.Name, req.DailyRateCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ft)
}

func (h *FineHandler) ListFineTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.fineTypeSvc.ListFineTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}
