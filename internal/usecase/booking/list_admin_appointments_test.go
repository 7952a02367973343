package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
)

func TestListAdminAppointments(t *testing.T) {
	env := newTestEnv(t)

	first := validInput(env.store.ID) // 2025-06-20, upcoming
	bookFixture(t, env, first)

	second := validInput(env.store.ID)
	second.Date = "2025-06-15" // today relative to testNow
	second.Time = "15:00"
	second.Barber = "Karim"
	second.ServiceName = "Beard Trim"
	bookFixture(t, env, second)

	uc := NewListAdminAppointments(env.repo)
	uc.now = func() time.Time { return testNow }

	all := domain.Filters{Status: "all", Store: "all", Barber: "all"}

	out, err := uc.Execute(context.Background(), all, domain.SortByDate, domain.SortAsc)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-06-15", out[0].Date)
	assert.Equal(t, domain.StatusToday, out[0].Status)
	assert.Equal(t, domain.StatusUpcoming, out[1].Status)

	today := all
	today.Status = "today"
	out, err = uc.Execute(context.Background(), today, domain.SortByDate, domain.SortAsc)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Karim", out[0].Barber)
}
