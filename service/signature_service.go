package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"

	"github.com/disintegration/imaging"

	"github.com/adityapw/ktp-ocr-service/dto"
	"github.com/adityapw/ktp-ocr-service/storage"
)

// ErrNoSignatureFound is returned when the image carries too little ink
// to contain a signature.
var ErrNoSignatureFound = errors.New("no signature found in image")

// Parameters for signature-on-white-paper input.
const (
	// Gray level at or below which a pixel counts as ink.
	signatureInkThreshold = 127
	// Pixels of whitespace kept around the detected ink box.
	signaturePadding = 20
	// Minimum ink pixels for a crop to count as a signature at all.
	minSignatureInkPixels = 500
)

// SignatureService crops a handwritten signature from a photo of white
// paper, renders it as a transparent PNG and uploads it.
type SignatureService struct {
	store storage.Client
}

// NewSignatureService creates a SignatureService. store may be nil when
// no storage is configured; extraction then fails at upload time.
func NewSignatureService(store storage.Client) *SignatureService {
	return &SignatureService{store: store}
}

// ExtractAndUpload finds the ink bounding box, crops it with padding,
// converts the ink to black-on-transparent and uploads the PNG. It
// returns the public URL with the crop dimensions.
func (s *SignatureService) ExtractAndUpload(ctx context.Context, imageData []byte) (*dto.SignatureResponse, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	gray := imaging.Blur(imaging.Grayscale(img), 1.0)
	bounds := gray.Bounds()

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	inkCount := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !isInk(gray.At(x, y)) {
				continue
			}
			inkCount++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if inkCount < minSignatureInkPixels {
		return nil, ErrNoSignatureFound
	}

	minX = maxInt(bounds.Min.X, minX-signaturePadding)
	minY = maxInt(bounds.Min.Y, minY-signaturePadding)
	maxX = minInt(bounds.Max.X-1, maxX+signaturePadding)
	maxY = minInt(bounds.Max.Y-1, maxY+signaturePadding)

	width := maxX - minX + 1
	height := maxY - minY + 1

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isInk(gray.At(minX+x, minY+y)) {
				out.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode signature png: %w", err)
	}

	if s.store == nil {
		return nil, fmt.Errorf("signature storage not configured")
	}

	objectName := storage.GenerateSignatureObjectName()
	uploaded, err := s.store.UploadFile(ctx, bytes.NewReader(buf.Bytes()), objectName, "image/png")
	if err != nil {
		return nil, fmt.Errorf("failed to upload signature: %w", err)
	}

	log.Printf("Signature uploaded as %s (%dx%d, %d ink pixels)", uploaded.ObjectName, width, height, inkCount)

	return &dto.SignatureResponse{
		Success:      true,
		Message:      "Signature extracted successfully",
		SignatureURL: uploaded.PublicURL,
		Confidence:   0.9,
		Dimensions: &dto.SignatureDimensions{
			X:      minX,
			Y:      minY,
			Width:  width,
			Height: height,
		},
	}, nil
}

// isInk reports whether a grayscale pixel is dark enough to be ink.
func isInk(c color.Color) bool {
	r, _, _, _ := c.RGBA()
	return uint8(r>>8) <= signatureInkThreshold
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
