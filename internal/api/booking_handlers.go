package api

import (
	"encoding/json"
	"net/http"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
	apperrors "sesamebooking/internal/errors"
	"sesamebooking/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, SlotsResponse{
		Slots:     catalog.Slots,
		Computers: booking.Computers,
	})
}

func (h *BookingHandler) ListOccupied(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, OccupiedResponse{Occupied: h.Service.ListOccupied()})
}

func (h *BookingHandler) ToggleDraft(w http.ResponseWriter, r *http.Request) {
	var req ToggleDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	draft, err := h.Service.ToggleDraftSlot(req.Draft, req.Slot)
	if err != nil {
		writeError(w, apperrors.FromDomain(err))
		return
	}
	if draft == nil {
		draft = booking.Draft{}
	}
	writeJSON(w, ToggleDraftResponse{Draft: draft})
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	record, message, err := h.Service.CommitDraft(r.Context(), req.Name, req.StudentClass, req.Slots)
	if err != nil {
		writeError(w, apperrors.FromDomain(err))
		return
	}
	writeJSON(w, CreateBookingResponse{Booking: record, Message: message})
}

func (h *BookingHandler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}
	grid, err := h.Service.WeekSchedule(date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, grid)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, httpErr *apperrors.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
}
