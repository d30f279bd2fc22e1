package greeting

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestDecideWelcomeBack(t *testing.T) {
	got := Decide("Amina", nil, nil, date(2026, time.March, 3))
	if got != "👋 Welcome back, Amina!" {
		t.Errorf("got %q", got)
	}
}

func TestDecideBirthday(t *testing.T) {
	birthday := date(1990, time.March, 3)
	got := Decide("Amina", &birthday, nil, date(2026, time.March, 3))
	if got != "🎉 Happy Birthday, Amina!" {
		t.Errorf("got %q", got)
	}
}

func TestDecideBirthdayYearIgnored(t *testing.T) {
	// Only month and day matter; the birth year never matches "now".
	birthday := date(2004, time.July, 15)
	got := Decide("Joseph", &birthday, nil, date(2026, time.July, 15))
	if got != "🎉 Happy Birthday, Joseph!" {
		t.Errorf("got %q", got)
	}
}

func TestDecideAlreadyGreetedToday(t *testing.T) {
	now := date(2026, time.March, 3)
	earlier := now.Add(-3 * time.Hour)
	if got := Decide("Amina", nil, &earlier, now); got != "" {
		t.Errorf("expected empty greeting, got %q", got)
	}
}

func TestDecideGreetedYesterday(t *testing.T) {
	now := date(2026, time.March, 3)
	yesterday := now.AddDate(0, 0, -1)
	if got := Decide("Amina", nil, &yesterday, now); got == "" {
		t.Error("expected a greeting the day after the last one")
	}
}

func TestDecideBirthdaySuppressedWhenAlreadyGreeted(t *testing.T) {
	now := date(2026, time.March, 3)
	birthday := date(1990, time.March, 3)
	earlier := now.Add(-time.Hour)
	if got := Decide("Amina", &birthday, &earlier, now); got != "" {
		t.Errorf("expected empty greeting, got %q", got)
	}
}
