package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	_ "image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor pulls the scanned page images out of a PDF so they can be
// fed to the token providers. KTP scans arrive as image-only PDFs; there
// is no text layer worth reading.
type PDFProcessor interface {
	ExtractScanImages(pdfData []byte) ([][]byte, error)
}

type pdfProcessor struct{}

// NewPDFProcessor creates the pdfcpu-backed processor.
func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractScanImages extracts every embedded image from the PDF in page
// order and returns them re-encoded as PNG, ready for the OCR providers.
func (p *pdfProcessor) ExtractScanImages(pdfData []byte) ([][]byte, error) {
	tempDir, err := os.MkdirTemp("", "ktp_scan_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "ktp-scan-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images from pdf: %w", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	// pdfcpu names extracted files by page and object number; sorting by
	// name keeps page order.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var pages [][]byte
	for _, name := range names {
		imgFile, err := os.Open(filepath.Join(tempDir, name))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			continue
		}
		pages = append(pages, buf.Bytes())
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no scan images found in pdf")
	}
	return pages, nil
}
