package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adityapw/ktp-ocr-service/dto"
)

// TokenProvider is implemented by recognition engines that can turn an
// image into word-level annotations.
type TokenProvider interface {
	Name() string
	DetectTokens(ctx context.Context, imageData []byte) (*dto.OCRResult, error)
}

// minMeaningfulTextLen is the minimum amount of recognized text a result
// must carry before it counts as usable. Below that the image is either
// blank or the provider misfired, and the fallback gets its turn.
const minMeaningfulTextLen = 10

// SmartOCRService runs a primary token provider with an automatic
// fallback. Either provider may be nil; at least one must be set.
type SmartOCRService struct {
	primary  TokenProvider
	fallback TokenProvider
}

// NewSmartOCRService wires the provider chain. Pass nil for a provider
// that is not configured.
func NewSmartOCRService(primary, fallback TokenProvider) *SmartOCRService {
	if primary == nil {
		primary = fallback
		fallback = nil
	}
	return &SmartOCRService{primary: primary, fallback: fallback}
}

// DetectTokens tries the primary provider and falls back when it errors
// or returns no meaningful text.
func (s *SmartOCRService) DetectTokens(ctx context.Context, imageData []byte) (*dto.OCRResult, error) {
	if s.primary == nil {
		return nil, fmt.Errorf("no OCR provider configured")
	}

	result, err := s.primary.DetectTokens(ctx, imageData)
	if err == nil && hasMeaningfulText(result) {
		return result, nil
	}
	if err != nil {
		log.Printf("%s failed: %v", s.primary.Name(), err)
	} else {
		log.Printf("%s returned no meaningful text", s.primary.Name())
	}

	if s.fallback == nil {
		if err != nil {
			return nil, fmt.Errorf("%s failed and no fallback configured: %w", s.primary.Name(), err)
		}
		return &dto.OCRResult{}, nil
	}

	log.Printf("falling back to %s", s.fallback.Name())
	result, err = s.fallback.DetectTokens(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("all OCR providers failed, last error: %w", err)
	}
	if !hasMeaningfulText(result) {
		log.Printf("%s returned no meaningful text", s.fallback.Name())
		return &dto.OCRResult{}, nil
	}
	return result, nil
}

// Status reports the configured provider chain for the health endpoint.
func (s *SmartOCRService) Status() map[string]string {
	status := make(map[string]string)
	if s.primary != nil {
		status["primary"] = s.primary.Name()
	}
	if s.fallback != nil {
		status["fallback"] = s.fallback.Name()
	}
	return status
}

// hasMeaningfulText checks whether a recognition result carries enough
// text to be worth parsing.
func hasMeaningfulText(result *dto.OCRResult) bool {
	if result == nil {
		return false
	}
	total := result.FullText
	if total == "" {
		var b strings.Builder
		for _, w := range result.Words {
			b.WriteString(w.Description)
		}
		total = b.String()
	}
	return len(strings.TrimSpace(total)) >= minMeaningfulTextLen
}
