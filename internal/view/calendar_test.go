package view

import (
	"testing"
	"time"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
)

func TestBuildCalendar_CellCountAndOrder(t *testing.T) {
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cells := BuildCalendar(nil, today)

	if len(cells) != constants.CalendarDays {
		t.Fatalf("expected %d cells, got %d", constants.CalendarDays, len(cells))
	}

	// Oldest first, newest (today) last.
	if cells[0].Date != "2025-04-17" {
		t.Errorf("first cell is %s, want 2025-04-17", cells[0].Date)
	}
	if cells[len(cells)-1].Date != "2025-06-15" {
		t.Errorf("last cell is %s, want 2025-06-15", cells[len(cells)-1].Date)
	}

	for i := 1; i < len(cells); i++ {
		if cells[i].Date <= cells[i-1].Date {
			t.Fatalf("cells out of order at %d: %s after %s", i, cells[i].Date, cells[i-1].Date)
		}
	}
}

func TestBuildCalendar_Classification(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		{ID: 1, Date: "2025-06-15", Completed: true},
		{ID: 2, Date: "2025-06-14", Completed: false},
		{ID: 3, Date: "2025-01-01", Completed: true}, // outside the window
	}

	cells := BuildCalendar(logs, today)
	byDate := make(map[string]Cell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	if got := byDate["2025-06-15"].State; got != DayCompleted {
		t.Errorf("2025-06-15 state = %v, want DayCompleted", got)
	}
	if got := byDate["2025-06-14"].State; got != DayMissed {
		t.Errorf("2025-06-14 state = %v, want DayMissed", got)
	}
	if got := byDate["2025-06-13"].State; got != DayEmpty {
		t.Errorf("2025-06-13 state = %v, want DayEmpty", got)
	}
	if byDate["2025-06-15"].LogID != 1 {
		t.Errorf("completed cell lost its log id")
	}
	if byDate["2025-06-13"].LogID != 0 {
		t.Errorf("empty cell must carry no log id")
	}
	if _, ok := byDate["2025-01-01"]; ok {
		t.Error("log outside the 60-day window leaked into the grid")
	}
}

func TestNextCompleted_Cycle(t *testing.T) {
	// An untouched day's first edit always sets it completed, never missed.
	if !NextCompleted(DayEmpty) {
		t.Error("empty day must transition to completed on first edit")
	}
	if NextCompleted(DayCompleted) {
		t.Error("completed day must transition to missed")
	}
	if !NextCompleted(DayMissed) {
		t.Error("missed day must transition back to completed")
	}
}

func TestDayHeaders(t *testing.T) {
	headers := DayHeaders()
	if len(headers) != 7 {
		t.Fatalf("expected 7 headers, got %d", len(headers))
	}
	if headers[0] != "Пн" || headers[6] != "Вс" {
		t.Errorf("headers must run Monday through Sunday, got %v", headers)
	}
}
