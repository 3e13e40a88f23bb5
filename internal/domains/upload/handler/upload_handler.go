package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/upload"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type UploadHandler struct {
	service upload.Service
	maxSize int64
}

func NewUploadHandler(svc upload.Service, maxSize int64) *UploadHandler {
	return &UploadHandler{service: svc, maxSize: maxSize}
}

// ════════════════════════════════════════════════════════════════
// UPLOAD: POST /api/upload (auth required)
// Multipart body, single file under field "image".
// ════════════════════════════════════════════════════════════════

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		response.InternalServerError(c, "Upload failed")
		return
	}
	defer file.Close()

	// Read one byte past the limit so oversized files are detected without
	// buffering arbitrarily large bodies.
	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		response.InternalServerError(c, "Upload failed")
		return
	}

	asset, err := h.service.Store(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		status := upload.ToHTTPStatus(err)
		if status >= 500 {
			logger.Error("Upload error", err)
			response.InternalServerError(c, "Upload failed")
			return
		}
		response.Message(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fileUrl": asset.URL,
	})
}
