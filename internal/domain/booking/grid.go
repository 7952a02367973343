package booking

import "fmt"

const TimeLayout = "15:04"

// TimeGrid returns every bookable slot time: a fixed half-hour grid from
// 00:00 to 23:30.
func TimeGrid() []string {
	grid := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		grid = append(grid,
			fmt.Sprintf("%02d:00", hour),
			fmt.Sprintf("%02d:30", hour),
		)
	}
	return grid
}

// ValidSlotTime reports whether t is "HH:00" or "HH:30" with a zero-padded
// hour between 00 and 23.
func ValidSlotTime(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}

	h1, h2 := t[0], t[1]
	if h1 < '0' || h1 > '9' || h2 < '0' || h2 > '9' {
		return false
	}
	hour := int(h1-'0')*10 + int(h2-'0')
	if hour > 23 {
		return false
	}

	return t[3:] == "00" || t[3:] == "30"
}

// ValidDate reports whether d is a well-formed "YYYY-MM-DD" calendar date.
func ValidDate(d string) bool {
	_, err := parseDate(d)
	return err == nil
}
