package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  func() time.Time { return timezone.NowIn(timezone.DefaultTimezone) },
	}
}

// Execute reports the state of every grid slot for one (store, barber, date).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	storeID string,
	barber string,
	date string,
) ([]domain.Availability, error) {

	if !domain.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	store, err := uc.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, httperr.ErrBusiness("store_not_found")
	}

	if !store.HasBarber(barber) {
		return nil, httperr.ErrBusiness("unknown_barber")
	}

	booked, err := uc.repo.BookedTimes(ctx, storeID, barber, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	now := uc.now()
	grid := domain.TimeGrid()
	slots := make([]domain.Availability, 0, len(grid))

	for _, t := range grid {
		slots = append(slots, domain.CheckSlot(
			taken[t],
			domain.SlotRequest{StoreID: storeID, Barber: barber, Date: date, Time: t},
			now,
		))
	}

	return slots, nil
}
