package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Store
// --------------------------------------------------

func (r *BookingGormRepository) ListStores(
	ctx context.Context,
) ([]models.Store, error) {

	var stores []models.Store
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *BookingGormRepository) GetStoreByID(
	ctx context.Context,
	id string,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *BookingGormRepository) CreateStore(
	ctx context.Context,
	store *models.Store,
) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *BookingGormRepository) UpdateStore(
	ctx context.Context,
	store *models.Store,
) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *BookingGormRepository) DeleteStore(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Store{}).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) SlotTaken(
	ctx context.Context,
	req domain.SlotRequest,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"store_id = ? AND barber = ? AND date = ? AND time = ?",
			req.StoreID, req.Barber, req.Date, req.Time,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) BookedTimes(
	ctx context.Context,
	storeID string,
	barber string,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"store_id = ? AND barber = ? AND date = ?",
			storeID, barber, date,
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
