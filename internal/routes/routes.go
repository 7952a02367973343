package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ouss77/nabou-booking/internal/audit"
	"github.com/Ouss77/nabou-booking/internal/handlers"
	infraRepo "github.com/Ouss77/nabou-booking/internal/infra/repository"
	"github.com/Ouss77/nabou-booking/internal/middleware"
	"github.com/Ouss77/nabou-booking/internal/storage"
	ucBooking "github.com/Ouss77/nabou-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	images *storage.ImageStore,
	log zerolog.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	bookSlotUC := ucBooking.NewBookSlot(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	listAppointmentsUC := ucBooking.NewListAdminAppointments(bookingRepo)
	updateFieldUC := ucBooking.NewUpdateAppointmentField(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, bookSlotUC)

	storeHandler := handlers.NewStoreHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		auditDispatcher,
		listAppointmentsUC,
		bookSlotUC,
		updateFieldUC,
	)
	uploadHandler := handlers.NewUploadHandler(db, images, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// STOREFRONT
		// ------------------------------
		api.GET("/stores", publicHandler.ListStores)
		api.GET("/stores/:id", publicHandler.GetStore)
		api.GET("/stores/:id/availability", publicHandler.Availability)
		api.POST("/stores/:id/appointments", publicHandler.CreateBooking)
		api.GET("/barbers", publicHandler.ListBarbers)

		// ------------------------------
		// ADMIN CONSOLE
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/stores", storeHandler.List)
			admin.POST("/stores", storeHandler.Create)
			admin.PUT("/stores/:id", storeHandler.Update)
			admin.DELETE("/stores/:id", storeHandler.Delete)

			admin.POST("/stores/:id/images", uploadHandler.UploadImage)
			admin.DELETE("/stores/:id/images", uploadHandler.RemoveImage)

			admin.GET("/appointments", appointmentHandler.List)
			admin.POST("/appointments", appointmentHandler.Create)
			admin.PATCH("/appointments/:id", appointmentHandler.UpdateField)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/stats", dashboardHandler.Stats)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
