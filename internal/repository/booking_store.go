package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"sesamebooking/internal/booking"
)

// BookingsFile is the fixed storage key for the committed bookings
// collection inside the data directory.
const BookingsFile = "bookings.json"

// BookingStore is the authoritative collection of committed bookings,
// serialized in full to a local JSON file after every mutation and
// rehydrated at startup. It assumes a single operator; the mutex only
// guards the in-memory slice and the file against the server's own
// concurrent request handling.
type BookingStore struct {
	mu       sync.Mutex
	path     string
	log      *zap.Logger
	bookings []booking.StudentBooking
}

// NewBookingStore loads (or initializes) the store under dataDir. A
// missing file means an empty store. A corrupt file is moved aside and
// the store starts empty: persisted-state corruption must never fail
// startup.
func NewBookingStore(dataDir string, log *zap.Logger) (*BookingStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	s := &BookingStore{
		path: filepath.Join(dataDir, BookingsFile),
		log:  log,
	}
	s.load()
	return s, nil
}

func (s *BookingStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("could not read bookings file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var loaded []booking.StudentBooking
	if err := json.Unmarshal(raw, &loaded); err != nil {
		corrupt := s.path + ".corrupt"
		if renameErr := os.Rename(s.path, corrupt); renameErr == nil {
			s.log.Warn("bookings file is corrupt, moved aside and starting empty",
				zap.String("path", s.path), zap.String("movedTo", corrupt), zap.Error(err))
		} else {
			s.log.Warn("bookings file is corrupt, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	s.bookings = loaded
}

// All returns a copy of every committed booking in insertion order.
func (s *BookingStore) All() []booking.StudentBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]booking.StudentBooking, len(s.bookings))
	for i, b := range s.bookings {
		slots := make([]booking.BookedSlot, len(b.Slots))
		copy(slots, b.Slots)
		b.Slots = slots
		out[i] = b
	}
	return out
}

// Append inserts a committed booking at the end of the store. It does
// not re-validate uniqueness; double-booking is rejected at selection
// time against the occupancy index.
func (s *BookingStore) Append(b booking.StudentBooking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	s.save()
}

// RemoveSlot removes the exact (date, timeId, computer) slot from its
// owning record. The record itself is removed once its slot sequence
// becomes empty. Returns booking.ErrSlotNotFound when no record holds
// the slot.
func (s *BookingStore) RemoveSlot(date, timeID string, computerID booking.ComputerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := booking.BookedSlot{Date: date, TimeID: timeID, ComputerID: computerID}
	for i := range s.bookings {
		for j, slot := range s.bookings[i].Slots {
			if slot != target {
				continue
			}
			s.bookings[i].Slots = append(s.bookings[i].Slots[:j], s.bookings[i].Slots[j+1:]...)
			if len(s.bookings[i].Slots) == 0 {
				s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			}
			s.save()
			return nil
		}
	}
	return booking.ErrSlotNotFound
}

// Snapshot writes the current serialized contents to dst, for backups.
func (s *BookingStore) Snapshot(dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.bookings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, raw, 0o644)
}

// save persists the full contents. Persistence is fire-and-forget: a
// failed write is logged and the in-memory state stays authoritative
// until the next successful write.
func (s *BookingStore) save() {
	raw, err := json.MarshalIndent(s.bookings, "", "  ")
	if err != nil {
		s.log.Error("could not serialize bookings", zap.Error(err))
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.log.Error("could not write bookings file", zap.String("path", tmp), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Error("could not replace bookings file", zap.String("path", s.path), zap.Error(err))
	}
}
