package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	StoreID   string `gorm:"type:uuid;index;uniqueIndex:idx_booking_slot" json:"store_id"`
	StoreName string `gorm:"size:100" json:"store_name"`

	ServiceName  string `gorm:"size:100;not null" json:"service_name"`
	ServicePrice int    `json:"service_price"`

	Barber string `gorm:"size:100;not null;uniqueIndex:idx_booking_slot" json:"barber"`

	// Calendar date and grid time are stored as plain strings ("2006-01-02",
	// "15:04") and compared lexicographically; no timezone is attached.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_booking_slot" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_booking_slot" json:"time"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:30" json:"customer_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
