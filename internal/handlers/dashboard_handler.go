package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
	"github.com/Ouss77/nabou-booking/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	TotalStores    int64 `json:"total_stores"`
	TotalBarbers   int   `json:"total_barbers"`
	TotalCustomers int64 `json:"total_customers"`

	Appointments struct {
		Total     int `json:"total"`
		Upcoming  int `json:"upcoming"`
		Today     int `json:"today"`
		Completed int `json:"completed"`
	} `json:"appointments"`

	Revenue int `json:"revenue"`
}

// Stats backs the dashboard cards: store/barber/customer counts and the
// appointment breakdown by computed status.
func (h *DashboardHandler) Stats(c *gin.Context) {
	var stats DashboardStats

	if err := h.db.Model(&models.Store{}).Count(&stats.TotalStores).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load dashboard stats.")
		return
	}

	var stores []models.Store
	if err := h.db.Find(&stores).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load dashboard stats.")
		return
	}
	stats.TotalBarbers = len(domain.AllBarbers(stores))

	if err := h.db.Model(&models.Appointment{}).
		Distinct("customer_email").
		Count(&stats.TotalCustomers).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load dashboard stats.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load dashboard stats.")
		return
	}

	now := timezone.NowIn(timezone.DefaultTimezone)
	stats.Appointments.Total = len(appointments)

	for _, ap := range appointments {
		switch domain.Classify(ap.Date, now) {
		case domain.StatusUpcoming:
			stats.Appointments.Upcoming++
		case domain.StatusToday:
			stats.Appointments.Today++
		case domain.StatusCompleted:
			stats.Appointments.Completed++
			stats.Revenue += ap.ServicePrice
		}
	}

	c.JSON(http.StatusOK, stats)
}
