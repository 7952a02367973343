package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/httpresp"
	"github.com/Ouss77/nabou-booking/internal/models"
	ucBooking "github.com/Ouss77/nabou-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the customer storefront: browse stores, check slot
// availability, book.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucBooking.GetAvailability
	bookSlot     *ucBooking.BookSlot
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	bookSlot *ucBooking.BookSlot,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		bookSlot:     bookSlot,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceName   string `json:"service_name" binding:"required"`
	ServicePrice  int    `json:"service_price"`
	Barber        string `json:"barber" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm, half-hour grid
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

// ======================================================
// STORES
// ======================================================

func (h *PublicHandler) ListStores(c *gin.Context) {
	var stores []models.Store
	if err := h.db.Order("created_at DESC").Find(&stores).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stores", "Failed to list stores.")
		return
	}

	httpresp.List(c, stores)
}

type storeService struct {
	Name string `json:"name"`
	domain.ServiceInfo
}

func (h *PublicHandler) GetStore(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.db.Where("id = ?", id).First(&store).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Store not found.")
		return
	}

	services := make([]storeService, 0, len(store.Services))
	for _, name := range store.Services {
		services = append(services, storeService{
			Name:        name,
			ServiceInfo: domain.ServiceDetails(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"store":    store,
		"services": services,
	})
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var stores []models.Store
	if err := h.db.Find(&stores).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	httpresp.List(c, domain.AllBarbers(stores))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	storeID := c.Param("id")
	barber := c.Query("barber")
	date := c.Query("date")

	if barber == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Barber and date are required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), storeID, barber, date)
	if err != nil {
		mapAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   date,
		"barber": barber,
		"slots":  slots,
	})
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	storeID := c.Param("id")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.bookSlot.Execute(c.Request.Context(), ucBooking.BookSlotInput{
		StoreID:       storeID,
		ServiceName:   req.ServiceName,
		ServicePrice:  req.ServicePrice,
		Barber:        req.Barber,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapAvailabilityError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "store_not_found"):
		httperr.NotFound(c, "store_not_found", "Store not found.")
	case httperr.IsBusiness(err, "unknown_barber"):
		httperr.BadRequest(c, "unknown_barber", "This barber does not work at the selected store.")
	case errors.Is(err, ucBooking.ErrAvailabilityUnknown):
		httperr.Unavailable(c, "availability_unconfirmed", "Could not confirm slot availability, please retry.")
	default:
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
	}
}

func mapBookingError(c *gin.Context, err error) {
	var fields domain.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"fields":     fields,
		})
		return
	}

	switch {
	case httperr.IsBusiness(err, "store_not_found"):
		httperr.NotFound(c, "store_not_found", "Store not found.")
	case httperr.IsBusiness(err, "unknown_barber"):
		httperr.BadRequest(c, "unknown_barber", "This barber does not work at the selected store.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "This time slot is in the past.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time slot is already booked with the selected barber.")
	case errors.Is(err, ucBooking.ErrAvailabilityUnknown):
		httperr.Unavailable(c, "availability_unconfirmed", "Could not confirm slot availability, please retry.")
	default:
		httperr.Internal(c, "failed_to_book", "Failed to book appointment.")
	}
}
