package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
	"sesamebooking/internal/repository"
	"sesamebooking/internal/schedule"
)

// BookingService orchestrates the booking core: occupancy listing,
// draft toggling, commit, targeted slot removal and the week
// projection.
type BookingService struct {
	store     *repository.BookingStore
	generator MessageGenerator
	log       *zap.Logger
}

func NewBookingService(store *repository.BookingStore, generator MessageGenerator, log *zap.Logger) *BookingService {
	return &BookingService{store: store, generator: generator, log: log}
}

// ListOccupied returns the occupied slot keys, re-derived from the
// store's current contents.
func (s *BookingService) ListOccupied() []string {
	return booking.ComputeOccupied(s.store.All()).Keys()
}

// ToggleDraftSlot applies one selection click to a client-held draft.
// The draft never lives on the server; the toggle is a pure transform
// over the draft plus the current occupancy index.
func (s *BookingService) ToggleDraftSlot(draft booking.Draft, slot booking.BookedSlot) (booking.Draft, error) {
	if err := catalog.ValidateSlot(slot); err != nil {
		return nil, err
	}
	occupied := booking.ComputeOccupied(s.store.All())
	return booking.Toggle(draft, occupied, slot), nil
}

// CommitDraft turns a validated draft into a committed StudentBooking
// and returns it together with the confirmation message for its first
// slot. The message is advisory text only; the booking is committed
// regardless of how it was produced.
func (s *BookingService) CommitDraft(ctx context.Context, name, studentClass string, slots []booking.BookedSlot) (booking.StudentBooking, string, error) {
	record, err := booking.NewStudentBooking(name, studentClass, slots)
	if err != nil {
		return booking.StudentBooking{}, "", err
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if err := catalog.ValidateSlot(slot); err != nil {
			return booking.StudentBooking{}, "", fmt.Errorf("%w: %s", err, slot.Key())
		}
		pair := slot.Date + "|" + slot.TimeID
		if _, dup := seen[pair]; dup {
			return booking.StudentBooking{}, "", fmt.Errorf("%w: duplicate selection for %s %s", booking.ErrInvalidSlot, slot.Date, slot.TimeID)
		}
		seen[pair] = struct{}{}
	}

	occupied := booking.ComputeOccupied(s.store.All())
	for _, slot := range slots {
		if occupied.Occupied(slot.Key()) {
			return booking.StudentBooking{}, "", fmt.Errorf("%w: %s", booking.ErrSlotOccupied, slot.Key())
		}
	}

	s.store.Append(record)
	s.log.Info("booking committed",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.Int("slots", len(record.Slots)))

	message := s.generator.ConfirmationMessage(ctx, record.Slots[0])
	return record, message, nil
}

// DeleteSlot removes one committed slot. Destructive and irreversible;
// the admin client is expected to confirm with the operator first.
func (s *BookingService) DeleteSlot(date, timeID string, computerID booking.ComputerID) error {
	if err := s.store.RemoveSlot(date, timeID, computerID); err != nil {
		return err
	}
	s.log.Info("slot removed", zap.String("key", booking.Key(date, timeID, computerID)))
	return nil
}

// ListBookings returns every committed booking record.
func (s *BookingService) ListBookings() []booking.StudentBooking {
	return s.store.All()
}

// WeekSchedule projects the week containing the anchor date.
func (s *BookingService) WeekSchedule(anchorDate string) (schedule.WeekGrid, error) {
	anchor, err := booking.ParseDate(anchorDate)
	if err != nil {
		return schedule.WeekGrid{}, fmt.Errorf("invalid anchor date %q: %w", anchorDate, err)
	}
	return schedule.ProjectWeek(anchor, s.store.All()), nil
}

// CurrentWeekSchedule projects the week containing today.
func (s *BookingService) CurrentWeekSchedule() schedule.WeekGrid {
	return schedule.ProjectWeek(time.Now(), s.store.All())
}
