package booking

import (
	"context"

	"github.com/Ouss77/nabou-booking/internal/models"
)

type Repository interface {
	// -------- Store --------
	ListStores(ctx context.Context) ([]models.Store, error)

	GetStoreByID(ctx context.Context, id string) (*models.Store, error)

	CreateStore(ctx context.Context, store *models.Store) error

	UpdateStore(ctx context.Context, store *models.Store) error

	DeleteStore(ctx context.Context, id string) error

	// -------- Appointment --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, id string) error

	// -------- Slots --------

	// SlotTaken reports whether an appointment already occupies the exact
	// (store, barber, date, time) tuple. excludeID skips one appointment,
	// for edits that move an existing booking.
	SlotTaken(ctx context.Context, req SlotRequest, excludeID string) (bool, error)

	// BookedTimes lists the grid times already taken for a store's barber
	// on one date.
	BookedTimes(ctx context.Context, storeID, barber, date string) ([]string, error)
}
