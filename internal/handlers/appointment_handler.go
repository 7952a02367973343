package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ouss77/nabou-booking/internal/audit"
	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/httpresp"
	"github.com/Ouss77/nabou-booking/internal/models"
	ucBooking "github.com/Ouss77/nabou-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db          *gorm.DB
	audit       *audit.Dispatcher
	list        *ucBooking.ListAdminAppointments
	bookSlot    *ucBooking.BookSlot
	updateField *ucBooking.UpdateAppointmentField
}

func NewAppointmentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	list *ucBooking.ListAdminAppointments,
	bookSlot *ucBooking.BookSlot,
	updateField *ucBooking.UpdateAppointmentField,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		audit:       audit,
		list:        list,
		bookSlot:    bookSlot,
		updateField: updateField,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateAppointmentRequest struct {
	StoreID string `json:"store_id" binding:"required"`
	CreateBookingRequest
}

type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	filters := domain.Filters{
		Search:   c.Query("search"),
		Status:   c.DefaultQuery("status", "all"),
		Store:    c.DefaultQuery("store", "all"),
		Barber:   c.DefaultQuery("barber", "all"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	field := domain.SortField(c.DefaultQuery("sort", string(domain.SortByDate)))
	if !domain.ValidSortField(field) {
		httperr.BadRequest(c, "invalid_sort_field", "Unknown sort field.")
		return
	}

	order := domain.SortOrder(c.DefaultQuery("order", string(domain.SortAsc)))
	if order != domain.SortAsc && order != domain.SortDesc {
		httperr.BadRequest(c, "invalid_sort_order", "Sort order must be asc or desc.")
		return
	}

	views, err := h.list.Execute(c.Request.Context(), filters, field, order)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.bookSlot.Execute(c.Request.Context(), ucBooking.BookSlotInput{
		StoreID:       req.StoreID,
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
// UPDATE FIELD
// ======================================================

func (h *AppointmentHandler) UpdateField(c *gin.Context) {
	id := c.Param("id")

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid edit payload.")
		return
	}

	ap, err := h.updateField.Execute(
		c.Request.Context(),
		id,
		domain.EditableField(req.Field),
		req.Value,
	)
	if err != nil {
		mapUpdateFieldError(c, err, req.Field)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": ap.ID})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapUpdateFieldError(c *gin.Context, err error, field string) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "unknown_field"):
		httperr.BadRequest(c, "unknown_field", "This field cannot be edited.")
	case httperr.IsBusiness(err, "unknown_barber"):
		httperr.BadRequest(c, "unknown_barber", "This barber does not work at the appointment's store.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time slot is already booked with the selected barber.")
	case httperr.IsBusiness(err, "invalid_"+field):
		httperr.BadRequest(c, "invalid_"+field, "Invalid value for "+field+".")
	default:
		mapBookingError(c, err)
	}
}
