package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/homebar/backend/internal/service"
)

// UploadHandler handles presigned upload requests for recipe images
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// PresignUploadRequest describes the file about to be uploaded.
type PresignUploadRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FileType string `json:"fileType" binding:"required"`
}

// PresignUpload returns a short-lived URL the client can PUT the image to
func (h *UploadHandler) PresignUpload(c *gin.Context) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName and fileType are required"})
		return
	}

	ticket, err := h.uploadService.PresignUpload(c.Request.Context(), req.FileName, req.FileType)
	if err != nil {
		if errors.Is(err, service.ErrNotAnImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate upload URL"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}
