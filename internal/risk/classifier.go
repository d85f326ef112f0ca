// Package risk computes the elapsed-time urgency tier of open complaints.
package risk

import (
	"time"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// Tier thresholds in elapsed calendar days, inclusive.
const (
	highMaxDays   = 3
	mediumMaxDays = 10
)

// ElapsedDays returns the calendar-day difference between the receipt date
// and the reference date, ignoring wall-clock hours. Nil when the receipt
// date is unknown.
func ElapsedDays(receivedAt *time.Time, reference time.Time) *int {
	if receivedAt == nil {
		return nil
	}
	recv := truncateToDay(*receivedAt)
	ref := truncateToDay(reference)
	days := int(ref.Sub(recv).Hours() / 24)
	return &days
}

// Classify assigns the urgency tier for a complaint received at receivedAt,
// evaluated against the reference date. A complaint with no usable receipt
// date is never escalated.
func Classify(receivedAt *time.Time, reference time.Time) model.RiskTier {
	elapsed := ElapsedDays(receivedAt, reference)
	if elapsed == nil {
		return model.RiskLow
	}
	switch {
	case *elapsed <= highMaxDays:
		return model.RiskHigh
	case *elapsed <= mediumMaxDays:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// truncateToDay anchors the calendar date in UTC so that receipt dates and
// reference times carrying different zones still subtract in whole days.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
