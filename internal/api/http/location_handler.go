package http

import (
	"net/http"

	"library-backend/internal/service"
)

type LocationHandler struct {
	locationSvc service.LocationService
}

func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

type addRoomRequest struct {
	Name string `json:"name"`
}

func (h *LocationHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req addRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	room, err := h.locationSvc.AddRoom(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *LocationHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.locationSvc.ListRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

type addShelfRequest struct {
	Name string `json:"name"`
}

func (h *LocationHandler) AddShelf(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req addShelfRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	shelf, err := h.locationSvc.AddShelf(r.Context(), roomID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shelf)
}

func (h *LocationHandler) ListShelves(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	shelves, err := h.locationSvc.ListShelvesByRoom(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shelves)
}
