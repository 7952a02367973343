package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ouss77/nabou-booking/internal/audit"
	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
	"github.com/Ouss77/nabou-booking/internal/storage"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
	audit  *audit.Dispatcher
}

func NewUploadHandler(
	db *gorm.DB,
	images *storage.ImageStore,
	audit *audit.Dispatcher,
) *UploadHandler {
	return &UploadHandler{
		db:     db,
		images: images,
		audit:  audit,
	}
}

type RemoveImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// UploadImage stores one gallery photo for a store and appends its public
// URL to the store's image list.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.db.Where("id = ?", id).First(&store).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Store not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "An image file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Image must be smaller than 10MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}

	url, err := h.images.Upload(c.Request.Context(), store.ID, raw)
	if err != nil {
		httperr.BadRequest(c, "failed_to_upload", "Please select a valid image file.")
		return
	}

	store.Images = append(store.Images, url)
	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_update_store", "Failed to save store images.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_image_uploaded",
		Entity:   "store",
		EntityID: store.ID,
		Metadata: map[string]string{"url": url},
	})

	c.JSON(http.StatusCreated, gin.H{
		"url":    url,
		"images": store.Images,
	})
}

// RemoveImage deletes a photo from the object store and drops its URL from
// the store record.
func (h *UploadHandler) RemoveImage(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.db.Where("id = ?", id).First(&store).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Store not found.")
		return
	}

	var req RemoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Image URL is required.")
		return
	}

	kept := make(models.StringList, 0, len(store.Images))
	found := false
	for _, img := range store.Images {
		if img == req.URL {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		httperr.NotFound(c, "image_not_found", "Image not found on this store.")
		return
	}

	if err := h.images.Remove(c.Request.Context(), req.URL); err != nil {
		httperr.Internal(c, "failed_to_remove_image", "Failed to remove image.")
		return
	}

	store.Images = kept
	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_update_store", "Failed to save store images.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_image_removed",
		Entity:   "store",
		EntityID: store.ID,
	})

	c.JSON(http.StatusOK, gin.H{"images": store.Images})
}
