package booking

import "time"

// ===============================
// Appointment Status
// ===============================

// Status is never persisted: it is recomputed from the appointment date on
// every read.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusToday     Status = "today"
	StatusUpcoming  Status = "upcoming"
)

const DateLayout = "2006-01-02"

// Classify buckets a calendar date against "today" in now's location.
// Time-of-day is ignored. Dates are zero-padded "YYYY-MM-DD" strings, so the
// comparison is a plain lexicographic one and the function is total even for
// malformed input.
func Classify(date string, now time.Time) Status {
	today := now.Format(DateLayout)

	switch {
	case date < today:
		return StatusCompleted
	case date == today:
		return StatusToday
	default:
		return StatusUpcoming
	}
}
