package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ouss77/nabou-booking/internal/models"
)

var queryNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func noFilters() Filters {
	return Filters{Status: "all", Store: "all", Barber: "all"}
}

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID: "a1", StoreID: "s1", StoreName: "Nabou Cuts",
			ServiceName: "Fade Cut", Barber: "Bob",
			Date: "2025-06-10", Time: "10:00",
			CustomerName: "Alice Martin", CustomerEmail: "alice@example.com",
			CustomerPhone: "+33612345678",
			CreatedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "a2", StoreID: "s2", StoreName: "Old Town Barber",
			ServiceName: "Beard Trim", Barber: "Karim",
			Date: "2025-06-15", Time: "09:30",
			CustomerName: "bruno", CustomerEmail: "bruno@mail.com",
			CustomerPhone: "+33698765432",
			CreatedAt:     time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "a3", StoreID: "s1", StoreName: "Nabou Cuts",
			ServiceName: "Classic Haircut", Barber: "Bob",
			Date: "2025-06-20", Time: "14:00",
			CustomerName: "Chloe", CustomerEmail: "chloe@example.com",
			CustomerPhone: "0707070707",
			CreatedAt:     time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestApplyNoFiltersIsIdentity(t *testing.T) {
	aps := sampleAppointments()

	out := Apply(aps, noFilters(), SortByCreatedAt, SortAsc, queryNow)

	require.Len(t, out, len(aps))
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, "a2", out[1].ID)
	assert.Equal(t, "a3", out[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	aps := sampleAppointments()

	Apply(aps, noFilters(), SortByDate, SortDesc, queryNow)

	assert.Equal(t, "a1", aps[0].ID, "input order must be preserved")
	assert.Equal(t, "a3", aps[2].ID)
}

func TestApplySearch(t *testing.T) {
	aps := sampleAppointments()
	f := noFilters()

	// case-insensitive, matches any of the six searchable fields
	f.Search = "ALICE"
	out := Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)

	f.Search = "old town"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].ID)

	f.Search = "0707"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a3", out[0].ID)

	f.Search = "no-such-customer"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	assert.Empty(t, out)
}

func TestApplyStatusFilter(t *testing.T) {
	aps := sampleAppointments()
	f := noFilters()

	f.Status = "completed"
	out := Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)

	f.Status = "today"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].ID)

	f.Status = "upcoming"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a3", out[0].ID)
}

func TestApplyStoreAndBarberFilters(t *testing.T) {
	aps := sampleAppointments()
	f := noFilters()

	f.Store = "s1"
	out := Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 2)

	f.Barber = "Karim"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	assert.Empty(t, out, "no Karim appointment at s1")

	f.Store = "all"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].ID)
}

func TestApplyDateBoundsInclusive(t *testing.T) {
	aps := sampleAppointments()
	f := noFilters()
	f.DateFrom = "2025-06-10"
	f.DateTo = "2025-06-15"

	out := Apply(aps, f, SortByDate, SortAsc, queryNow)
	require.Len(t, out, 2)
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, "a2", out[1].ID)
}

func TestSortReversal(t *testing.T) {
	aps := sampleAppointments()

	asc := Apply(aps, noFilters(), SortByCustomerName, SortAsc, queryNow)
	desc := Apply(aps, noFilters(), SortByCustomerName, SortDesc, queryNow)

	require.Len(t, asc, 3)
	// case-insensitive: "Alice Martin" < "bruno" < "Chloe"
	assert.Equal(t, "a1", asc[0].ID)
	assert.Equal(t, "a2", asc[1].ID)
	assert.Equal(t, "a3", asc[2].ID)

	assert.Equal(t, "a3", desc[0].ID)
	assert.Equal(t, "a2", desc[1].ID)
	assert.Equal(t, "a1", desc[2].ID)
}

func TestSortStability(t *testing.T) {
	aps := []models.Appointment{
		{ID: "x1", Date: "2025-06-10", Time: "09:00"},
		{ID: "x2", Date: "2025-06-10", Time: "10:00"},
		{ID: "x3", Date: "2025-06-10", Time: "11:00"},
	}

	out := Apply(aps, noFilters(), SortByDate, SortAsc, queryNow)

	require.Len(t, out, 3)
	assert.Equal(t, "x1", out[0].ID)
	assert.Equal(t, "x2", out[1].ID)
	assert.Equal(t, "x3", out[2].ID)
}

func TestSortMalformedDatesOrderLast(t *testing.T) {
	aps := []models.Appointment{
		{ID: "bad", Date: "not-a-date"},
		{ID: "ok1", Date: "2025-06-10"},
		{ID: "ok2", Date: "2025-06-20"},
	}

	out := Apply(aps, noFilters(), SortByDate, SortAsc, queryNow)
	require.Len(t, out, 3)
	assert.Equal(t, "ok1", out[0].ID)
	assert.Equal(t, "ok2", out[1].ID)
	assert.Equal(t, "bad", out[2].ID)
}

func TestEndToEndScenario(t *testing.T) {
	aps := []models.Appointment{
		{ID: "only", StoreID: "s1", Barber: "Bob", Date: "2025-01-10", Time: "10:00"},
	}

	out := Apply(aps, noFilters(), SortByDate, SortAsc, queryNow)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].ID)

	f := noFilters()
	f.Barber = "Alice"
	out = Apply(aps, f, SortByDate, SortAsc, queryNow)
	assert.Empty(t, out)
}
