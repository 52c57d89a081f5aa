package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adityapw/ktp-ocr-service/dto"
	"github.com/adityapw/ktp-ocr-service/extractor"
)

// KTPService turns an uploaded card image (or PDF scan) into a structured
// KTP record: recognition tokens from the provider chain, field
// resolution by the extractor.
type KTPService struct {
	ocr          *SmartOCRService
	pdfProcessor PDFProcessor
	extractor    *extractor.Extractor
}

// NewKTPService creates a KTPService.
func NewKTPService(ocr *SmartOCRService, pdfProcessor PDFProcessor, ext *extractor.Extractor) *KTPService {
	return &KTPService{
		ocr:          ocr,
		pdfProcessor: pdfProcessor,
		extractor:    ext,
	}
}

// ExtractFromFile extracts KTP data from an uploaded file. PDFs are
// treated as scans: the first embedded page image is recognized. The
// record itself is fail-soft; unreadable fields come back null.
func (s *KTPService) ExtractFromFile(ctx context.Context, fileData []byte, mimeType string) (*dto.KTPData, error) {
	imageData := fileData

	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		log.Println("Processing PDF scan for KTP extraction")
		pages, err := s.pdfProcessor.ExtractScanImages(fileData)
		if err != nil {
			return nil, fmt.Errorf("failed to extract scan images from pdf: %w", err)
		}
		// The card is on page 1 of a KTP scan.
		imageData = pages[0]
	}

	result, err := s.ocr.DetectTokens(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("text recognition failed: %w", err)
	}

	data := s.extractor.Extract(result.Words)
	return &data, nil
}
