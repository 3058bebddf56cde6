package api

import (
	"encoding/json"
	"net/http"

	"sesamebooking/internal/booking"
	apperrors "sesamebooking/internal/errors"
	"sesamebooking/internal/service"
)

type AdminHandler struct {
	Service   *service.BookingService
	Notify    *service.NotifyService
	Generator service.MessageGenerator
}

func NewAdminHandler(svc *service.BookingService, notify *service.NotifyService, generator service.MessageGenerator) *AdminHandler {
	return &AdminHandler{Service: svc, Notify: notify, Generator: generator}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.ListBookings())
}

// DeleteSlot removes one committed slot. Irreversible; the admin client
// must ask the operator to confirm before calling this.
func (h *AdminHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	timeID := q.Get("timeId")
	computerID := booking.ComputerID(q.Get("computerId"))
	if date == "" || timeID == "" || computerID == "" {
		http.Error(w, "date, timeId and computerId are required", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteSlot(date, timeID, computerID); err != nil {
		writeError(w, apperrors.FromDomain(err))
		return
	}
	writeJSON(w, map[string]string{"message": "Slot removed"})
}

// NotifyStudent generates the confirmation message for a slot and
// pushes it to the given email and/or phone. Delivery is best effort;
// the response carries the message either way.
func (h *AdminHandler) NotifyStudent(w http.ResponseWriter, r *http.Request) {
	var req NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	message := h.Generator.ConfirmationMessage(r.Context(), req.Slot)
	if req.Email != "" {
		h.Notify.SendConfirmationEmail(req.Email, req.Name, message)
	}
	if req.Phone != "" {
		h.Notify.SendConfirmationSMS(req.Phone, message)
	}
	writeJSON(w, NotifyResponse{Message: message})
}
