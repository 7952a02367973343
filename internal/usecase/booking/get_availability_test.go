package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
)

func TestGetAvailability(t *testing.T) {
	env := newTestEnv(t)

	book := NewBookSlot(env.repo, env.audit)
	book.now = func() time.Time { return testNow }
	_, err := book.Execute(context.Background(), validInput(env.store.ID))
	require.NoError(t, err)

	uc := NewGetAvailability(env.repo)
	uc.now = func() time.Time { return testNow }

	slots, err := uc.Execute(context.Background(), env.store.ID, "Bob", "2025-06-20")
	require.NoError(t, err)
	require.Len(t, slots, 48)

	byTime := make(map[string]domain.Availability, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	booked := byTime["10:00"]
	assert.False(t, booked.Available)
	assert.Equal(t, domain.ReasonBooked, booked.Reason)

	free := byTime["10:30"]
	assert.True(t, free.Available)
	assert.Equal(t, domain.ReasonAvailable, free.Reason)
}

func TestGetAvailabilitySameDayPastSlots(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)
	uc.now = func() time.Time { return testNow } // 2025-06-15 12:00

	slots, err := uc.Execute(context.Background(), env.store.ID, "Bob", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, slots, 48)

	for _, s := range slots {
		if s.Time <= "12:00" {
			assert.Equalf(t, domain.ReasonPast, s.Reason, "slot %s", s.Time)
		} else {
			assert.Truef(t, s.Available, "slot %s", s.Time)
		}
	}
}

func TestGetAvailabilityRejects(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)
	uc.now = func() time.Time { return testNow }

	_, err := uc.Execute(context.Background(), env.store.ID, "Bob", "not-a-date")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), "no-such-store", "Bob", "2025-06-20")
	assert.True(t, httperr.IsBusiness(err, "store_not_found"))

	_, err = uc.Execute(context.Background(), env.store.ID, "Zinedine", "2025-06-20")
	assert.True(t, httperr.IsBusiness(err, "unknown_barber"))
}

func TestGetAvailabilityFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(brokenSlotRepo{env.repo})
	uc.now = func() time.Time { return testNow }

	_, err := uc.Execute(context.Background(), env.store.ID, "Bob", "2025-06-20")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAvailabilityUnknown))
}
