package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Draft is the uncommitted, session-local sequence of slot selections.
// Invariant: at most one computer per (date, timeId) pair.
type Draft []BookedSlot

// Toggle applies one selection click to a draft and returns the new
// draft. The input draft is never modified.
//
//   - Occupied slot: no-op, the unchanged draft is returned. Claiming a
//     committed slot is a routine UI event, not an error.
//   - Exact triple already selected: deselect it.
//   - Otherwise: drop any selection for the same (date, timeId) so only
//     one computer stays selected per time slot, then append.
func Toggle(draft Draft, occupied OccupiedSet, slot BookedSlot) Draft {
	if occupied.Occupied(slot.Key()) {
		return draft
	}

	for _, s := range draft {
		if s == slot {
			next := make(Draft, 0, len(draft)-1)
			for _, keep := range draft {
				if keep != slot {
					next = append(next, keep)
				}
			}
			return next
		}
	}

	next := make(Draft, 0, len(draft)+1)
	for _, s := range draft {
		if s.Date == slot.Date && s.TimeID == slot.TimeID {
			continue
		}
		next = append(next, s)
	}
	return append(next, slot)
}

// NewStudentBooking validates a commit and builds the booking record
// with a fresh id and timestamp. Clearing the draft afterwards is the
// caller's responsibility.
func NewStudentBooking(name, studentClass string, slots []BookedSlot) (StudentBooking, error) {
	if len(slots) == 0 {
		return StudentBooking{}, ErrEmptySelection
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(studentClass) == "" {
		return StudentBooking{}, ErrMissingIdentity
	}

	owned := make([]BookedSlot, len(slots))
	copy(owned, slots)

	return StudentBooking{
		ID:           uuid.NewString(),
		Name:         name,
		StudentClass: studentClass,
		Slots:        owned,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
