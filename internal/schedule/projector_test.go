package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
	"sesamebooking/internal/schedule"
)

func date(s string) time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeekMonday(t *testing.T) {
	// 2024-03-04 is a Monday.
	assert.Equal(t, "2024-03-04", schedule.WeekMonday(date("2024-03-04")).Format(booking.DateLayout))
	assert.Equal(t, "2024-03-04", schedule.WeekMonday(date("2024-03-06")).Format(booking.DateLayout))
	assert.Equal(t, "2024-03-04", schedule.WeekMonday(date("2024-03-09")).Format(booking.DateLayout))

	// A Sunday anchor steps back six days into the week that just ended.
	assert.Equal(t, "2024-02-26", schedule.WeekMonday(date("2024-03-03")).Format(booking.DateLayout))
}

func TestProjectWeekSundayAnchor(t *testing.T) {
	grid := schedule.ProjectWeek(date("2024-03-03"), nil)

	assert.Equal(t, "2024-02-26", grid.Start)
	assert.Equal(t, "2024-03-02", grid.End)
	require.Len(t, grid.Days, 6)
	assert.Equal(t, "Mon", grid.Days[0].Weekday)
	assert.Equal(t, "Sat", grid.Days[5].Weekday)
}

func TestProjectWeekTotality(t *testing.T) {
	grid := schedule.ProjectWeek(date("2024-03-04"), nil)

	require.Len(t, grid.Rows, len(catalog.Slots))
	for _, row := range grid.Rows {
		require.Len(t, row.Cells, 6, "row %s", row.TimeID)
		for i, cell := range row.Cells {
			isSaturday := i == 5
			wantApplicable := (isSaturday && row.Period == catalog.AM) ||
				(!isSaturday && row.Period == catalog.PM)

			assert.Equal(t, wantApplicable, cell.Applicable, "row %s day %s", row.TimeID, cell.Date)
			if cell.Applicable {
				// Every applicable cell carries all three seats.
				require.Len(t, cell.Seats, 3)
			} else {
				// Off-period cells are distinct from empty seats.
				assert.Empty(t, cell.Seats)
			}
		}
	}
}

func TestProjectWeekOccupants(t *testing.T) {
	all := []booking.StudentBooking{
		{
			ID: "1", Name: "Amy", StudentClass: "1A",
			Slots: []booking.BookedSlot{
				{Date: "2024-03-04", TimeID: "14:00", ComputerID: booking.ComputerA},
			},
		},
	}

	grid := schedule.ProjectWeek(date("2024-03-04"), all)

	var row *schedule.Row
	for i := range grid.Rows {
		if grid.Rows[i].TimeID == "14:00" {
			row = &grid.Rows[i]
			break
		}
	}
	require.NotNil(t, row)

	cell := row.Cells[0] // Monday 2024-03-04
	require.True(t, cell.Applicable)
	assert.True(t, cell.Seats[0].Occupied)
	assert.Equal(t, "Amy", cell.Seats[0].Name)
	assert.Equal(t, "1A", cell.Seats[0].StudentClass)
	assert.False(t, cell.Seats[1].Occupied)
	assert.Empty(t, cell.Seats[1].Name)
}

func TestProjectWeekIgnoresOtherWeeks(t *testing.T) {
	all := []booking.StudentBooking{
		{
			ID: "1", Name: "Amy", StudentClass: "1A",
			Slots: []booking.BookedSlot{
				{Date: "2024-03-11", TimeID: "14:00", ComputerID: booking.ComputerA},
			},
		},
	}

	grid := schedule.ProjectWeek(date("2024-03-04"), all)
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			for _, seat := range cell.Seats {
				assert.False(t, seat.Occupied)
			}
		}
	}
}
