package booking

import "time"

// ===============================
// Slot availability
// ===============================

type SlotRequest struct {
	StoreID string
	Barber  string
	Date    string // "2006-01-02"
	Time    string // "15:04", half-hour grid
}

type SlotReason string

const (
	ReasonBooked    SlotReason = "booked"
	ReasonPast      SlotReason = "past"
	ReasonAvailable SlotReason = "available"
)

type Availability struct {
	Time      string     `json:"time"`
	Available bool       `json:"available"`
	Reason    SlotReason `json:"reason"`
}

func parseDate(d string) (time.Time, error) {
	return time.Parse(DateLayout, d)
}

// SlotInPast reports whether the slot's date+time is behind now. Dates before
// today are always past; on today's date the grid time is compared against
// now's clock; future dates are never past.
func SlotInPast(date, slotTime string, now time.Time) bool {
	today := now.Format(DateLayout)

	if date < today {
		return true
	}
	if date > today {
		return false
	}

	return slotTime <= now.Format(TimeLayout)
}

// CheckSlot combines the taken-lookup result with the past rule. A slot that
// is both booked and past reports "booked".
func CheckSlot(taken bool, req SlotRequest, now time.Time) Availability {
	av := Availability{Time: req.Time}

	switch {
	case taken:
		av.Reason = ReasonBooked
	case SlotInPast(req.Date, req.Time, now):
		av.Reason = ReasonPast
	default:
		av.Available = true
		av.Reason = ReasonAvailable
	}

	return av
}
