package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/repository"
	"sesamebooking/internal/service"
)

func newService(t *testing.T) *service.BookingService {
	t.Helper()
	store, err := repository.NewBookingStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return service.NewBookingService(store, service.TemplateGenerator{}, zap.NewNop())
}

// 2024-03-04 is a Monday.
var mondaySlot = booking.BookedSlot{Date: "2024-03-04", TimeID: "14:00", ComputerID: booking.ComputerA}

func TestCommitDraft(t *testing.T) {
	svc := newService(t)

	record, message, err := svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Contains(t, message, "3月4日")
	assert.Contains(t, message, "週一")
	assert.Contains(t, message, "14:00")
	assert.Contains(t, message, "電腦A")

	assert.Contains(t, svc.ListOccupied(), mondaySlot.Key())
}

func TestCommitDraftValidation(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.CommitDraft(context.Background(), "Amy", "1A", nil)
	assert.ErrorIs(t, err, booking.ErrEmptySelection)

	_, _, err = svc.CommitDraft(context.Background(), "", "1A", []booking.BookedSlot{mondaySlot})
	assert.ErrorIs(t, err, booking.ErrMissingIdentity)

	sunday := booking.BookedSlot{Date: "2024-03-03", TimeID: "14:00", ComputerID: booking.ComputerA}
	_, _, err = svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{sunday})
	assert.ErrorIs(t, err, booking.ErrInvalidSlot)

	// Two computers for the same (date, time) in one submission breaks
	// the one-computer-per-slot rule.
	dup := booking.BookedSlot{Date: "2024-03-04", TimeID: "14:00", ComputerID: booking.ComputerB}
	_, _, err = svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot, dup})
	assert.ErrorIs(t, err, booking.ErrInvalidSlot)
}

func TestCommitRejectsOccupiedSlot(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot})
	require.NoError(t, err)

	_, _, err = svc.CommitDraft(context.Background(), "Ben", "2B", []booking.BookedSlot{mondaySlot})
	assert.ErrorIs(t, err, booking.ErrSlotOccupied)

	// The uniqueness invariant holds: only Amy's record exists.
	all := svc.ListBookings()
	require.Len(t, all, 1)
	assert.Equal(t, "Amy", all[0].Name)
}

func TestToggleDraftSlotRejectsOccupied(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot})
	require.NoError(t, err)

	// Toggling a committed slot never changes the draft.
	draft, err := svc.ToggleDraftSlot(nil, mondaySlot)
	require.NoError(t, err)
	assert.Empty(t, draft)
}

func TestToggleDraftSlotInvalid(t *testing.T) {
	svc := newService(t)

	_, err := svc.ToggleDraftSlot(nil, booking.BookedSlot{Date: "2024-03-03", TimeID: "14:00", ComputerID: booking.ComputerA})
	assert.ErrorIs(t, err, booking.ErrInvalidSlot)
}

func TestDeleteSlotScenario(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot("2024-03-04", "14:00", booking.ComputerA))

	// Amy's record had one slot, so it disappears entirely and the key
	// is free again.
	assert.Empty(t, svc.ListBookings())
	assert.NotContains(t, svc.ListOccupied(), mondaySlot.Key())

	err = svc.DeleteSlot("2024-03-04", "14:00", booking.ComputerA)
	assert.ErrorIs(t, err, booking.ErrSlotNotFound)
}

func TestWeekSchedule(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.CommitDraft(context.Background(), "Amy", "1A", []booking.BookedSlot{mondaySlot})
	require.NoError(t, err)

	grid, err := svc.WeekSchedule("2024-03-06")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", grid.Start)
	assert.Equal(t, "2024-03-09", grid.End)

	_, err = svc.WeekSchedule("not-a-date")
	assert.Error(t, err)
}
