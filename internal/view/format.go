package view

import (
	"time"

	"github.com/mkuznetsova/habitadm/internal/constants"
)

// FormatDate renders an ISO datetime as DD.MM.YYYY for display. The input
// is returned unchanged when it does not parse.
func FormatDate(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format(constants.DisplayDateFormat)
}

// FormatDateTime renders an ISO datetime as DD.MM.YYYY HH:MM for display.
func FormatDateTime(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format(constants.DisplayDateTimeFormat)
}

// OrDash substitutes the em dash for empty optional values.
func OrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func parseISO(iso string) (time.Time, error) {
	// The backend emits both zoned and naive ISO datetimes.
	t, err := time.Parse(time.RFC3339, iso)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", iso)
}
