package booking

import (
	"time"
)

// ComputerID identifies one of the three interchangeable computer seats.
type ComputerID string

const (
	ComputerA ComputerID = "A"
	ComputerB ComputerID = "B"
	ComputerC ComputerID = "C"
)

// Computers lists every seat in display order.
var Computers = []ComputerID{ComputerA, ComputerB, ComputerC}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// BookedSlot is one atomic reservation unit: a computer on a given
// date and time slot. At most one BookedSlot with the same triple may
// exist across the whole store.
type BookedSlot struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	TimeID     string     `json:"timeId"`
	ComputerID ComputerID `json:"computerId"`
}

// StudentBooking is a single submission. It owns its slots exclusively;
// the record is removed once its last slot is removed.
type StudentBooking struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	StudentClass string       `json:"studentClass"`
	Slots        []BookedSlot `json:"slots"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ValidComputer(id ComputerID) bool {
	for _, c := range Computers {
		if c == id {
			return true
		}
	}
	return false
}
