// Package catalog holds the static calendar configuration: which
// wall-clock time slots exist and on which weekdays they apply.
package catalog

import (
	"time"

	"sesamebooking/internal/booking"
)

// Period partitions the time slots into the Saturday morning block and
// the weekday afternoon block.
type Period string

const (
	AM   Period = "AM"
	PM   Period = "PM"
	None Period = ""
)

// TimeSlot is an immutable catalog entry. The list is fixed at process
// start and never mutated.
type TimeSlot struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Period Period `json:"period"`
}

// Sat: 10:00 - 12:00
// Mon-Fri: 13:30 - 20:30
var Slots = []TimeSlot{
	{ID: "10:00", Label: "10:00", Period: AM},
	{ID: "10:30", Label: "10:30", Period: AM},
	{ID: "11:00", Label: "11:00", Period: AM},
	{ID: "11:30", Label: "11:30", Period: AM},
	{ID: "12:00", Label: "12:00", Period: AM},

	{ID: "13:30", Label: "13:30", Period: PM},
	{ID: "14:00", Label: "14:00", Period: PM},
	{ID: "14:30", Label: "14:30", Period: PM},
	{ID: "15:00", Label: "15:00", Period: PM},
	{ID: "15:30", Label: "15:30", Period: PM},
	{ID: "16:00", Label: "16:00", Period: PM},
	{ID: "16:30", Label: "16:30", Period: PM},
	{ID: "17:00", Label: "17:00", Period: PM},
	{ID: "17:30", Label: "17:30", Period: PM},
	{ID: "18:00", Label: "18:00", Period: PM},
	{ID: "18:30", Label: "18:30", Period: PM},
	{ID: "19:00", Label: "19:00", Period: PM},
	{ID: "19:30", Label: "19:30", Period: PM},
	{ID: "20:00", Label: "20:00", Period: PM},
	{ID: "20:30", Label: "20:30", Period: PM},
}

// ApplicablePeriod maps a weekday to the period open for booking:
// Saturday mornings, Monday-Friday afternoons, nothing on Sunday.
func ApplicablePeriod(day time.Weekday) Period {
	switch day {
	case time.Saturday:
		return AM
	case time.Sunday:
		return None
	default:
		return PM
	}
}

// SlotsFor returns the catalog entries belonging to a period, in order.
func SlotsFor(period Period) []TimeSlot {
	if period == None {
		return nil
	}
	var out []TimeSlot
	for _, s := range Slots {
		if s.Period == period {
			out = append(out, s)
		}
	}
	return out
}

// ByID looks up a catalog entry by its time id.
func ByID(id string) (TimeSlot, bool) {
	for _, s := range Slots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// ValidateSlot checks a booked slot against the catalog: the date must
// parse, the computer and time id must exist, and the slot's period
// must be the one open on that weekday.
func ValidateSlot(slot booking.BookedSlot) error {
	date, err := booking.ParseDate(slot.Date)
	if err != nil {
		return booking.ErrInvalidSlot
	}
	if !booking.ValidComputer(slot.ComputerID) {
		return booking.ErrInvalidSlot
	}
	entry, ok := ByID(slot.TimeID)
	if !ok {
		return booking.ErrInvalidSlot
	}
	if ApplicablePeriod(date.Weekday()) != entry.Period {
		return booking.ErrInvalidSlot
	}
	return nil
}
