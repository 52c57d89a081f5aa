package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/ktp-ocr-service/dto"
	"github.com/adityapw/ktp-ocr-service/service"
	"github.com/adityapw/ktp-ocr-service/utils"
)

// KTPHandler handles KTP extraction requests
type KTPHandler struct {
	ktpService        *service.KTPService
	maxFileSize       int64
	allowedExtensions []string
}

// NewKTPHandler creates a new KTPHandler instance
func NewKTPHandler(ktpService *service.KTPService, maxFileSize int64, allowedExtensions []string) *KTPHandler {
	return &KTPHandler{
		ktpService:        ktpService,
		maxFileSize:       maxFileSize,
		allowedExtensions: allowedExtensions,
	}
}

// ExtractKTP handles the POST /ktp/extract endpoint
func (h *KTPHandler) ExtractKTP(c *gin.Context) {
	log.Println("Received KTP extraction request")

	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A KTP image file is required", err)
		return
	}

	if !utils.IsAllowedFile(file.Filename, h.allowedExtensions) {
		h.sendError(c, http.StatusBadRequest, "File type not allowed. Supported: jpg, jpeg, png, pdf", nil)
		return
	}
	if !utils.ValidateFileSize(file.Size, h.maxFileSize) {
		h.sendError(c, http.StatusBadRequest, "File size too large", nil)
		return
	}

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data", err)
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = utils.InferMimeType(file.Filename)
	}

	data, err := h.ktpService.ExtractFromFile(c.Request.Context(), fileData, mimeType)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract KTP data", err)
		return
	}

	// A card without a readable NIK is not treated as a valid KTP. This
	// is boundary policy, not extraction failure: HTTP 200 either way.
	if data.NIK == nil {
		c.JSON(http.StatusOK, dto.KTPResponse{
			Success: false,
			Message: "NIK not found. Please ensure the image is a valid KTP",
		})
		return
	}

	log.Println("KTP extraction completed successfully")
	c.JSON(http.StatusOK, dto.KTPResponse{
		Success: true,
		Message: "KTP data extracted successfully",
		Data:    data,
	})
}

// sendError sends a structured error response
func (h *KTPHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "KTP_EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
