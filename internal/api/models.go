package api

import (
	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
)

// Slots catalog
type SlotsResponse struct {
	Slots     []catalog.TimeSlot   `json:"slots"`
	Computers []booking.ComputerID `json:"computers"`
}

// Occupancy
type OccupiedResponse struct {
	Occupied []string `json:"occupied"`
}

// Draft toggle: the client holds the draft and posts it back with each
// selection click.
type ToggleDraftRequest struct {
	Draft []booking.BookedSlot `json:"draft"`
	Slot  booking.BookedSlot   `json:"slot"`
}
type ToggleDraftResponse struct {
	Draft []booking.BookedSlot `json:"draft"`
}

// Commit
type CreateBookingRequest struct {
	Name         string               `json:"name"`
	StudentClass string               `json:"studentClass"`
	Slots        []booking.BookedSlot `json:"slots"`
}
type CreateBookingResponse struct {
	Booking booking.StudentBooking `json:"booking"`
	Message string                 `json:"message"`
}

// Admin
type LoginRequest struct {
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}

type NotifyRequest struct {
	Slot  booking.BookedSlot `json:"slot"`
	Name  string             `json:"name,omitempty"`
	Email string             `json:"email,omitempty"`
	Phone string             `json:"phone,omitempty"`
}
type NotifyResponse struct {
	Message string `json:"message"`
}
