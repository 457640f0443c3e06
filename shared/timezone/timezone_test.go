package timezone_test

import (
	"testing"
	"time"

	"comfort/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("expected Today() to be truncated to midnight, got %v", today)
	}

	now := timezone.Now()
	if today.Year() != now.Year() || today.YearDay() != now.YearDay() {
		t.Errorf("expected Today() to share the current date, got %v", today)
	}
}

func TestTimezoneFormatAndParse(t *testing.T) {
	testTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2025-01-01")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	if parsed.Year() != 2025 || parsed.Month() != time.January || parsed.Day() != 1 {
		t.Errorf("Parse() returned wrong date: %v", parsed)
	}
}
