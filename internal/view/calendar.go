package view

import (
	"time"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
)

// DayState classifies one calendar day of a habit's history.
type DayState int

const (
	DayEmpty DayState = iota
	DayCompleted
	DayMissed
)

// Cell is one day of the 60-day calendar grid.
type Cell struct {
	Date     string // YYYY-MM-DD
	DayOfMon int
	State    DayState
	LogID    int // zero when State == DayEmpty
}

// DayHeaders returns the weekday header row for the calendar grid.
func DayHeaders() []string {
	return []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
}

// BuildCalendar classifies the most recent CalendarDays calendar days,
// oldest first, by exact date-string lookup into the fetched log set. Days
// without a log are DayEmpty. When the backend ever reports two logs for
// one day, the last one wins; the grid assumes at most one.
func BuildCalendar(logs []models.HabitLog, today time.Time) []Cell {
	byDate := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	cells := make([]Cell, 0, constants.CalendarDays)
	for i := constants.CalendarDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		dateStr := d.Format(constants.DateFormat)
		cell := Cell{
			Date:     dateStr,
			DayOfMon: d.Day(),
			State:    DayEmpty,
		}
		if l, ok := byDate[dateStr]; ok {
			cell.LogID = l.ID
			if l.Completed {
				cell.State = DayCompleted
			} else {
				cell.State = DayMissed
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// NextCompleted returns the completed flag a day should be upserted with
// when toggled: an untouched day always becomes completed first, after that
// the day alternates between completed and missed. A touched day never
// returns to the untouched state.
func NextCompleted(state DayState) bool {
	return state != DayCompleted
}
