package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Ouss77/nabou-booking/internal/audit"
	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
	"github.com/Ouss77/nabou-booking/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// UpdateAppointmentField applies one inline table edit: a single named field
// on a single appointment.
type UpdateAppointmentField struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointmentField(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentField {
	return &UpdateAppointmentField{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return timezone.NowIn(timezone.DefaultTimezone) },
	}
}

func (uc *UpdateAppointmentField) Execute(
	ctx context.Context,
	appointmentID string,
	field domain.EditableField,
	value string,
) (*models.Appointment, error) {

	if !domain.ValidEditableField(field) {
		return nil, httperr.ErrBusiness("unknown_field")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.ApplyEdit(ap, field, value); err != nil {
		return nil, err
	}

	// Moving the booking to another slot re-runs the availability rules.
	if field.TouchesSlot() {
		if field == domain.FieldBarber {
			store, err := uc.repo.GetStoreByID(ctx, ap.StoreID)
			if err != nil {
				return nil, httperr.ErrBusiness("store_not_found")
			}
			if !store.HasBarber(ap.Barber) {
				return nil, httperr.ErrBusiness("unknown_barber")
			}
		}

		slot := domain.SlotRequest{
			StoreID: ap.StoreID,
			Barber:  ap.Barber,
			Date:    ap.Date,
			Time:    ap.Time,
		}

		taken, err := uc.repo.SlotTaken(ctx, slot, ap.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
		}
		if taken {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_field_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"field": string(field)},
	})

	return ap, nil
}
