package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ouss77/nabou-booking/internal/audit"
	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
	"github.com/Ouss77/nabou-booking/internal/timezone"
)

// ErrAvailabilityUnknown marks a failed slot lookup. The booking is refused:
// an unverified slot is never treated as free.
var ErrAvailabilityUnknown = errors.New("availability_unconfirmed")

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	StoreID     string
	ServiceName string

	// ServicePrice <= 0 falls back to the default catalog price.
	ServicePrice int

	Barber string
	Date   string
	Time   string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return timezone.NowIn(timezone.DefaultTimezone) },
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Appointment, error) {

	if errs := domain.ValidateBookingForm(domain.BookingForm{
		StoreID:       in.StoreID,
		ServiceName:   in.ServiceName,
		Barber:        in.Barber,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
	}); len(errs) > 0 {
		return nil, domain.FieldErrors(errs)
	}

	store, err := uc.repo.GetStoreByID(ctx, in.StoreID)
	if err != nil {
		return nil, httperr.ErrBusiness("store_not_found")
	}

	if !store.HasBarber(in.Barber) {
		return nil, httperr.ErrBusiness("unknown_barber")
	}

	now := uc.now()
	slot := domain.SlotRequest{
		StoreID: in.StoreID,
		Barber:  in.Barber,
		Date:    in.Date,
		Time:    in.Time,
	}

	if domain.SlotInPast(in.Date, in.Time, now) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	taken, err := uc.repo.SlotTaken(ctx, slot, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}
	if taken {
		uc.dispatchConflict(slot)
		return nil, httperr.ErrBusiness("slot_taken")
	}

	price := in.ServicePrice
	if price <= 0 {
		price = domain.ServiceDetails(in.ServiceName).Price
	}

	ap := &models.Appointment{
		StoreID:       store.ID,
		StoreName:     store.Title,
		ServiceName:   in.ServiceName,
		ServicePrice:  price,
		Barber:        in.Barber,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// The unique index on (store_id, barber, date, time) closes the
		// race the pre-insert check leaves open.
		if httperr.IsUniqueViolation(err) {
			uc.dispatchConflict(slot)
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

func (uc *BookSlot) dispatchConflict(slot domain.SlotRequest) {
	uc.audit.Dispatch(audit.Event{
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]string{
			"store_id": slot.StoreID,
			"barber":   slot.Barber,
			"date":     slot.Date,
			"time":     slot.Time,
		},
	})
}
