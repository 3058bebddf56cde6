package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"sesamebooking/internal/repository"
	"sesamebooking/internal/schedule"
)

// JobService holds the scheduled maintenance tasks run by cron: a
// nightly backup of the bookings file and the Monday-morning schedule
// summary pushed to the teacher by email and SMS.
type JobService struct {
	store        *repository.BookingStore
	bookings     *BookingService
	notify       *NotifyService
	log          *zap.Logger
	dataDir      string
	teacherEmail string
	teacherPhone string
}

func NewJobService(store *repository.BookingStore, bookings *BookingService, notify *NotifyService, log *zap.Logger, dataDir, teacherEmail, teacherPhone string) *JobService {
	return &JobService{
		store:        store,
		bookings:     bookings,
		notify:       notify,
		log:          log,
		dataDir:      dataDir,
		teacherEmail: teacherEmail,
		teacherPhone: teacherPhone,
	}
}

// SnapshotStore copies the current store contents into a dated backup
// file. Last write wins on restore, same as the live file.
func (s *JobService) SnapshotStore() {
	dst := filepath.Join(s.dataDir, "backups", fmt.Sprintf("bookings-%s.json", time.Now().Format("20060102")))
	if err := s.store.Snapshot(dst); err != nil {
		s.log.Warn("store snapshot failed", zap.String("dst", dst), zap.Error(err))
		return
	}
	s.log.Info("store snapshot written", zap.String("dst", dst))
}

// SendWeeklySchedule pushes a summary of the current week's booked
// slots to the teacher: the full listing by email, a one-line count by
// SMS. A no-op for each channel that is not configured.
func (s *JobService) SendWeeklySchedule() {
	if s.teacherEmail == "" && s.teacherPhone == "" {
		return
	}

	grid := s.bookings.CurrentWeekSchedule()
	body, booked := weeklyScheduleBody(grid)

	if s.teacherEmail != "" {
		subject := fmt.Sprintf("本週補課班表 (%s ~ %s)", grid.Start, grid.End)
		if err := s.notify.SendScheduleEmail(s.teacherEmail, subject, body); err != nil {
			s.log.Warn("weekly schedule email failed", zap.String("to", s.teacherEmail), zap.Error(err))
		} else {
			s.log.Info("weekly schedule email sent", zap.String("to", s.teacherEmail), zap.Int("bookedSlots", booked))
		}
	}

	if s.teacherPhone != "" {
		s.notify.SendConfirmationSMS(s.teacherPhone, weeklyScheduleSMS(grid, booked))
	}
}

// weeklyScheduleBody renders the plain-text listing of every booked
// slot in the grid and returns it with the booked-slot count.
func weeklyScheduleBody(grid schedule.WeekGrid) (string, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "補課班表 %s ~ %s\n\n", grid.Start, grid.End)
	booked := 0
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			if !cell.Applicable {
				continue
			}
			for _, seat := range cell.Seats {
				if !seat.Occupied {
					continue
				}
				booked++
				fmt.Fprintf(&b, "%s %s 電腦%s: %s (%s)\n",
					cell.Date, row.Label, seat.ComputerID, seat.Name, seat.StudentClass)
			}
		}
	}
	if booked == 0 {
		b.WriteString("本週沒有預約。\n")
	}
	return b.String(), booked
}

func weeklyScheduleSMS(grid schedule.WeekGrid, booked int) string {
	return fmt.Sprintf("本週補課班表 (%s ~ %s)：共 %d 個預約時段，明細已寄至您的信箱。", grid.Start, grid.End, booked)
}
