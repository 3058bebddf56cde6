package booking

import "errors"

var (
	// ErrEmptySelection is returned when a commit is attempted with no slots.
	ErrEmptySelection = errors.New("no slots selected")

	// ErrMissingIdentity is returned when name or class is blank at commit.
	ErrMissingIdentity = errors.New("name and class are required")

	// ErrSlotOccupied is returned when a committed slot is claimed again.
	ErrSlotOccupied = errors.New("slot already booked")

	// ErrSlotNotFound is returned when removing a slot that does not exist.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidSlot is returned for slots outside the catalog: unknown
	// time id, bad date, Sunday, or a period that does not match the day.
	ErrInvalidSlot = errors.New("invalid slot")
)
