// Package schedule projects committed bookings into the Monday-Saturday
// week grid shown on the teacher view.
package schedule

import (
	"time"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
)

// SeatCell is one computer within an applicable day cell. Name and
// StudentClass are empty when the seat is free.
type SeatCell struct {
	ComputerID   booking.ComputerID `json:"computerId"`
	Occupied     bool               `json:"occupied"`
	Name         string             `json:"name,omitempty"`
	StudentClass string             `json:"studentClass,omitempty"`
}

// DayCell is the intersection of one time-slot row and one day column.
// Off-period combinations (a PM row under Saturday, an AM row under a
// weekday) are marked not applicable and carry no seats.
type DayCell struct {
	Date       string     `json:"date"`
	Applicable bool       `json:"applicable"`
	Seats      []SeatCell `json:"seats,omitempty"`
}

// Row is one catalog time slot across the six projected days.
type Row struct {
	TimeID string         `json:"timeId"`
	Label  string         `json:"label"`
	Period catalog.Period `json:"period"`
	Cells  []DayCell      `json:"cells"`
}

// Day is a column header of the grid.
type Day struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// WeekGrid is the full Monday-Saturday projection. Every catalog slot
// contributes a row and every row carries exactly six cells.
type WeekGrid struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  []Day  `json:"days"`
	Rows  []Row  `json:"rows"`
}

// WeekMonday returns the Monday of the week containing anchor. A Sunday
// anchor belongs to the week that ended the day before, so it steps back
// six days.
func WeekMonday(anchor time.Time) time.Time {
	day := anchor.Weekday()
	diff := int(day - time.Monday)
	if day == time.Sunday {
		diff = 6
	}
	return anchor.AddDate(0, 0, -diff)
}

type occupant struct {
	name         string
	studentClass string
}

// ProjectWeek builds the week grid for the week containing anchor.
// Sunday never appears: the week runs Monday through Saturday.
func ProjectWeek(anchor time.Time, all []booking.StudentBooking) WeekGrid {
	monday := WeekMonday(anchor)

	days := make([]Day, 0, 6)
	dates := make([]time.Time, 0, 6)
	for i := 0; i < 6; i++ {
		d := monday.AddDate(0, 0, i)
		dates = append(dates, d)
		days = append(days, Day{
			Date:    d.Format(booking.DateLayout),
			Weekday: d.Weekday().String()[:3],
		})
	}

	occupants := make(map[string]occupant)
	for _, student := range all {
		for _, slot := range student.Slots {
			occupants[slot.Key()] = occupant{name: student.Name, studentClass: student.StudentClass}
		}
	}

	rows := make([]Row, 0, len(catalog.Slots))
	for _, tmpl := range catalog.Slots {
		row := Row{TimeID: tmpl.ID, Label: tmpl.Label, Period: tmpl.Period, Cells: make([]DayCell, 0, 6)}
		for i, d := range dates {
			cell := DayCell{Date: days[i].Date}
			if catalog.ApplicablePeriod(d.Weekday()) != tmpl.Period {
				row.Cells = append(row.Cells, cell)
				continue
			}
			cell.Applicable = true
			for _, comp := range booking.Computers {
				seat := SeatCell{ComputerID: comp}
				if occ, ok := occupants[booking.Key(cell.Date, tmpl.ID, comp)]; ok {
					seat.Occupied = true
					seat.Name = occ.name
					seat.StudentClass = occ.studentClass
				}
				cell.Seats = append(cell.Seats, seat)
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return WeekGrid{
		Start: days[0].Date,
		End:   days[5].Date,
		Days:  days,
		Rows:  rows,
	}
}
