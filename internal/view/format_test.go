package view

import "testing"

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-06-15T10:30:00Z"); got != "15.06.2025" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("2025-06-15T10:30:00"); got != "15.06.2025" {
		t.Errorf("FormatDate (naive) = %q", got)
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("unparseable input must pass through, got %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2025-06-15T10:30:00Z"); got != "15.06.2025 10:30" {
		t.Errorf("FormatDateTime = %q", got)
	}
}

func TestOrDash(t *testing.T) {
	if got := OrDash(""); got != "—" {
		t.Errorf("OrDash(\"\") = %q", got)
	}
	if got := OrDash("08:00"); got != "08:00" {
		t.Errorf("OrDash must pass non-empty values through, got %q", got)
	}
}
