// Package greeting decides what, if anything, the customer dashboard
// should say when it loads. The decision is a pure function of its
// inputs; callers own whatever per-session state feeds lastGreeted.
package greeting

import (
	"fmt"
	"time"
)

// Decide returns the greeting for a customer, or "" when they were
// already greeted today. A nil birthday never produces a birthday
// message.
func Decide(name string, birthday *time.Time, lastGreeted *time.Time, now time.Time) string {
	if lastGreeted != nil && sameDay(*lastGreeted, now) {
		return ""
	}
	if birthday != nil && birthday.Day() == now.Day() && birthday.Month() == now.Month() {
		return fmt.Sprintf("🎉 Happy Birthday, %s!", name)
	}
	return fmt.Sprintf("👋 Welcome back, %s!", name)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
