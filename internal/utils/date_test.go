package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2023-11-25")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	expected := time.Date(2023, time.November, 25, 0, 0, 0, 0, time.UTC)
	if !date.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, date)
	}
}

func TestParseInvalidDate(t *testing.T) {
	if _, err := ParseDate("I'm not a date."); err == nil {
		t.Error("expected an error for an invalid date")
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2023, time.November, 19, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "2023-11-19" {
		t.Errorf("expected 2023-11-19, got %s", got)
	}
}

func TestDayDiff(t *testing.T) {
	dateA, _ := ParseDate("2023-11-25")
	dateB, _ := ParseDate("2023-11-20")

	if diff := DayDiff(dateA, dateB); diff != 5 {
		t.Errorf("expected 5, got %d", diff)
	}
	if diff := DayDiff(dateB, dateA); diff != -5 {
		t.Errorf("expected -5, got %d", diff)
	}
}
