package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"github.com/adityapw/ktp-ocr-service/dto"
)

// VisionClient wraps the Google Cloud Vision REST API for text detection.
// It is the primary token provider.
type VisionClient struct {
	service *vision.Service
}

// NewVisionClient creates a Vision client authenticated with a service
// account credentials file.
func NewVisionClient(ctx context.Context, credentialsPath string) (*VisionClient, error) {
	service, err := vision.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}
	return &VisionClient{service: service}, nil
}

// Name identifies the provider in logs and health reporting.
func (c *VisionClient) Name() string {
	return "google_vision"
}

// DetectTokens runs TEXT_DETECTION on the image and returns word-level
// annotations. Vision delivers the whole-image text as the first
// annotation; that entry goes into FullText and never into Words, so it
// cannot contaminate field matching downstream.
func (c *VisionClient) DetectTokens(ctx context.Context, imageData []byte) (*dto.OCRResult, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(imageData)},
				Features: []*vision.Feature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	resp, err := c.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("vision annotate request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return &dto.OCRResult{}, nil
	}

	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return nil, fmt.Errorf("vision annotate error: %s", annotated.Error.Message)
	}

	result := &dto.OCRResult{}
	for i, anno := range annotated.TextAnnotations {
		if i == 0 {
			// Whole-image aggregate, not a word token.
			result.FullText = anno.Description
			continue
		}
		if anno.BoundingPoly == nil {
			continue
		}
		word := dto.TextAnnotation{Description: anno.Description}
		for _, v := range anno.BoundingPoly.Vertices {
			word.BoundingPoly.Vertices = append(word.BoundingPoly.Vertices, dto.Vertex{
				X: float64(v.X),
				Y: float64(v.Y),
			})
		}
		result.Words = append(result.Words, word)
	}

	log.Printf("Google Vision returned %d word annotations", len(result.Words))
	return result, nil
}
