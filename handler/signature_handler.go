package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/ktp-ocr-service/dto"
	"github.com/adityapw/ktp-ocr-service/service"
	"github.com/adityapw/ktp-ocr-service/utils"
)

// SignatureHandler handles signature extraction requests
type SignatureHandler struct {
	signatureService  *service.SignatureService
	maxFileSize       int64
	allowedExtensions []string
}

// NewSignatureHandler creates a new SignatureHandler instance
func NewSignatureHandler(signatureService *service.SignatureService, maxFileSize int64, allowedExtensions []string) *SignatureHandler {
	return &SignatureHandler{
		signatureService:  signatureService,
		maxFileSize:       maxFileSize,
		allowedExtensions: allowedExtensions,
	}
}

// ExtractSignature handles the POST /ktp/signature endpoint. The input
// is a photo of a signature on white paper; the output is the public URL
// of the cropped, transparent PNG.
func (h *SignatureHandler) ExtractSignature(c *gin.Context) {
	log.Println("Received signature extraction request")

	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A signature image file is required", err)
		return
	}

	if !utils.IsAllowedFile(file.Filename, h.allowedExtensions) {
		h.sendError(c, http.StatusBadRequest, "File type not allowed. Supported: jpg, jpeg, png", nil)
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

	imageData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data", err)
		return
	}

	result, err := h.signatureService.ExtractAndUpload(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, service.ErrNoSignatureFound) {
			c.JSON(http.StatusOK, dto.SignatureResponse{
				Success: false,
				Message: "No signature found in image",
			})
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to extract signature", err)
		return
	}

	log.Println("Signature extraction completed successfully")
	c.JSON(http.StatusOK, result)
}

// sendError sends a structured error response
func (h *SignatureHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "SIGNATURE_EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
