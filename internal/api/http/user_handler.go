package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userSvc      service.UserService
	dashboardSvc service.DashboardService
}

func NewUserHandler(userSvc service.UserService, dashboardSvc service.DashboardService) *UserHandler {
	return &UserHandler{userSvc: userSvc, dashboardSvc: dashboardSvc}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	user, err := h.userSvc.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type listUsersResponse struct {
	Users      []domain.User `json:"users"`
	TotalCount int32         `json:"total_count"`
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.UserFilter{
		Email:    q.Get("email"),
		Name:     q.Get("name"),
		Page:     queryInt32(q.Get("page"), 1),
		PageSize: queryInt32(q.Get("page_size"), 20),
	}

	users, total, err := h.userSvc.ListUsers(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listUsersResponse{Users: users, TotalCount: total})
}

// Me returns the authenticated caller's own profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.NewError(domain.KindUnauthorized, "not authenticated"))
		return
	}
	user, err := h.userSvc.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardSvc.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
