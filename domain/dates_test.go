package domain

import (
	"testing"
	"time"
)

func TestFormatLocalDateKeepsCalendarDay(t *testing.T) {
	// the same calendar day picked in very different zones must serialize
	// to the same date, with no day-shift
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-12", -12*60*60),
		time.FixedZone("UTC-5", -5*60*60),
		time.FixedZone("UTC+2", 2*60*60),
		time.FixedZone("UTC+14", 14*60*60),
	}

	for _, zone := range zones {
		picked := time.Date(2024, 6, 1, 0, 0, 0, 0, zone)
		got := FormatLocalDate(picked)
		if got != "2024-06-01" {
			t.Errorf("FormatLocalDate(%v in %v) = %v, want 2024-06-01", picked, zone, got)
		}
	}
}

func TestFormatLocalDateLateEvening(t *testing.T) {
	// 23:30 local in a negative-offset zone is already the next day in UTC
	zone := time.FixedZone("UTC-5", -5*60*60)
	picked := time.Date(2024, 6, 1, 23, 30, 0, 0, zone)

	got := FormatLocalDate(picked)
	if got != "2024-06-01" {
		t.Errorf("FormatLocalDate(%v) = %v, want 2024-06-01", picked, got)
	}
}

func TestParseCalendarDateRoundTrip(t *testing.T) {
	parsed, err := ParseCalendarDate("2024-06-04")
	if err != nil {
		t.Fatalf("ParseCalendarDate returned error: %v", err)
	}
	if got := FormatLocalDate(parsed); got != "2024-06-04" {
		t.Errorf("round trip = %v, want 2024-06-04", got)
	}
}

func TestParseCalendarDateRejectsGarbage(t *testing.T) {
	if _, err := ParseCalendarDate("06/01/2024"); err == nil {
		t.Error("ParseCalendarDate accepted a non-calendar format")
	}
}
