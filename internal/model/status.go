package model

import "time"

// Status is the stored expiration classification of a document.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusExpired Status = "expired"
)

// WarningWindowDays is the number of days before expiration during which a
// document is classified as warning.
const WarningWindowDays = 30

// Classify maps an expiration date and a reference time to a Status.
// Comparisons are at day granularity; time-of-day is ignored. Documents with
// no expiration date never expire. A document expiring today is already
// expired; the warning window covers the 30 days after today inclusive.
func Classify(expiration *time.Time, now time.Time) Status {
	if expiration == nil {
		return StatusValid
	}
	exp := DateOf(*expiration)
	today := DateOf(now)

	switch {
	case !exp.After(today):
		return StatusExpired
	case !exp.After(today.AddDate(0, 0, WarningWindowDays)):
		return StatusWarning
	default:
		return StatusValid
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusValid || s == StatusWarning || s == StatusExpired
}

// WorstOf returns the most severe of the given statuses, with ordering
// expired > warning > valid. An empty input yields valid.
func WorstOf(statuses ...Status) Status {
	worst := StatusValid
	for _, s := range statuses {
		switch s {
		case StatusExpired:
			return StatusExpired
		case StatusWarning:
			worst = StatusWarning
		}
	}
	return worst
}

// DateOf truncates t to midnight UTC, discarding the time-of-day component.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
