package booking

import (
	"sort"
	"strings"
	"time"

	"github.com/Ouss77/nabou-booking/internal/models"
)

// ===============================
// Admin list query engine
// ===============================

// Filters are combined with AND. "all" (or empty string for search and the
// date bounds) disables the corresponding predicate.
type Filters struct {
	Search   string
	Status   string // all | upcoming | today | completed
	Store    string // store id or "all"
	Barber   string // barber name or "all"
	DateFrom string // inclusive "YYYY-MM-DD", "" = unbounded
	DateTo   string // inclusive "YYYY-MM-DD", "" = unbounded
}

type SortField string

const (
	SortByDate         SortField = "date"
	SortByTime         SortField = "time"
	SortByCustomerName SortField = "customer_name"
	SortByStoreName    SortField = "store_name"
	SortByServiceName  SortField = "service_name"
	SortByBarber       SortField = "barber"
	SortByCreatedAt    SortField = "created_at"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ValidSortField(f SortField) bool {
	switch f {
	case SortByDate, SortByTime, SortByCustomerName, SortByStoreName,
		SortByServiceName, SortByBarber, SortByCreatedAt:
		return true
	}
	return false
}

// Apply filters and sorts appointments for display. The input slice is never
// mutated; the result is a fresh, stably ordered slice.
func Apply(
	appointments []models.Appointment,
	filters Filters,
	field SortField,
	order SortOrder,
	now time.Time,
) []models.Appointment {

	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if matches(ap, filters, now) {
			out = append(out, ap)
		}
	}

	sortAppointments(out, field, order)
	return out
}

func matches(ap models.Appointment, f Filters, now time.Time) bool {
	if f.Search != "" && !matchesSearch(ap, f.Search) {
		return false
	}

	if f.Status != "" && f.Status != "all" {
		if string(Classify(ap.Date, now)) != f.Status {
			return false
		}
	}

	if f.Store != "" && f.Store != "all" && ap.StoreID != f.Store {
		return false
	}

	if f.Barber != "" && f.Barber != "all" && ap.Barber != f.Barber {
		return false
	}

	// Zero-padded fixed-width dates, so lexicographic bounds are correct.
	if f.DateFrom != "" && ap.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && ap.Date > f.DateTo {
		return false
	}

	return true
}

func matchesSearch(ap models.Appointment, search string) bool {
	needle := strings.ToLower(search)

	for _, field := range []string{
		ap.CustomerName,
		ap.CustomerEmail,
		ap.CustomerPhone,
		ap.StoreName,
		ap.ServiceName,
		ap.Barber,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// ===============================
// Sorting
// ===============================

func sortAppointments(aps []models.Appointment, field SortField, order SortOrder) {
	sort.SliceStable(aps, func(i, j int) bool {
		cmp := compare(aps[i], aps[j], field)
		if order == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func compare(a, b models.Appointment, field SortField) int {
	switch field {
	case SortByDate:
		return compareDates(a.Date, b.Date)
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortByTime:
		return compareFold(a.Time, b.Time)
	case SortByCustomerName:
		return compareFold(a.CustomerName, b.CustomerName)
	case SortByStoreName:
		return compareFold(a.StoreName, b.StoreName)
	case SortByServiceName:
		return compareFold(a.ServiceName, b.ServiceName)
	case SortByBarber:
		return compareFold(a.Barber, b.Barber)
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareDates orders parseable dates as instants. A malformed date sorts
// after every parseable one so ordering stays deterministic; two malformed
// dates fall back to a string compare.
func compareDates(a, b string) int {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)

	switch {
	case errA == nil && errB == nil:
		return ta.Compare(tb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
