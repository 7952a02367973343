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
)

type StoreHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStoreHandler(db *gorm.DB, audit *audit.Dispatcher) *StoreHandler {
	return &StoreHandler{db: db, audit: audit}
}

// --------- Requests ---------

// StoreRequest uses StringList so services posted either as plain strings or
// as {"name": ...} objects land in one shape.
type StoreRequest struct {
	Title       string            `json:"title"`
	Address     string            `json:"address"`
	Description string            `json:"description"`
	Services    models.StringList `json:"services"`
	Barbers     models.StringList `json:"barbers"`
	Images      models.StringList `json:"images"`
}

func (r StoreRequest) form() domain.StoreForm {
	return domain.StoreForm{
		Title:       r.Title,
		Address:     r.Address,
		Description: r.Description,
		Services:    r.Services,
		Barbers:     r.Barbers,
	}
}

// --------- Handlers ---------

func (h *StoreHandler) List(c *gin.Context) {
	var stores []models.Store
	if err := h.db.Order("created_at DESC").Find(&stores).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stores", "Failed to list stores.")
		return
	}

	httpresp.List(c, stores)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid store payload.")
		return
	}

	if fields := domain.ValidateStoreForm(req.form()); len(fields) > 0 {
		writeFieldErrors(c, fields)
		return
	}

	store := models.Store{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		Services:    req.Services,
		Barbers:     req.Barbers,
		Images:      req.Images,
	}

	if err := h.db.Create(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_create_store", "Failed to create store.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_created",
		Entity:   "store",
		EntityID: store.ID,
	})

	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.db.Where("id = ?", id).First(&store).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "store_not_found", "Store not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_store", "Failed to load store.")
		return
	}

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid store payload.")
		return
	}

	if fields := domain.ValidateStoreForm(req.form()); len(fields) > 0 {
		writeFieldErrors(c, fields)
		return
	}

	store.Title = req.Title
	store.Address = req.Address
	store.Description = req.Description
	store.Services = req.Services
	store.Barbers = req.Barbers
	store.Images = req.Images

	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_update_store", "Failed to update store.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_updated",
		Entity:   "store",
		EntityID: store.ID,
	})

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.db.Where("id = ?", id).First(&store).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Store not found.")
		return
	}

	if err := h.db.Delete(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_store", "Failed to delete store.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_deleted",
		Entity:   "store",
		EntityID: store.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": store.ID})
}

func writeFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error_code": "validation_failed",
		"fields":     fields,
	})
}
