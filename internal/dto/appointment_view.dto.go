package dto

import (
	"time"

	"github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/models"
)

// AppointmentView is an appointment row plus its computed lifecycle status.
type AppointmentView struct {
	models.Appointment
	Status booking.Status `json:"status"`
}

func NewAppointmentView(ap models.Appointment, now time.Time) AppointmentView {
	return AppointmentView{
		Appointment: ap,
		Status:      booking.Classify(ap.Date, now),
	}
}
