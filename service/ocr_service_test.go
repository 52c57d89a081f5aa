package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityapw/ktp-ocr-service/dto"
)

type fakeProvider struct {
	name      string
	result    *dto.OCRResult
	err       error
	calls     int
	lastInput []byte
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) DetectTokens(ctx context.Context, imageData []byte) (*dto.OCRResult, error) {
	f.calls++
	f.lastInput = imageData
	return f.result, f.err
}

func goodResult() *dto.OCRResult {
	return &dto.OCRResult{FullText: "PROVINSI DKI JAKARTA NIK 3171023456789012"}
}

func TestDetectTokensPrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "primary", result: goodResult()}
	fallback := &fakeProvider{name: "fallback", result: goodResult()}
	svc := NewSmartOCRService(primary, fallback)

	result, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.NoError(t, err)
	assert.Equal(t, goodResult(), result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestDetectTokensFallsBackOnError(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("quota exceeded")}
	fallback := &fakeProvider{name: "fallback", result: goodResult()}
	svc := NewSmartOCRService(primary, fallback)

	result, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.NoError(t, err)
	assert.Equal(t, goodResult(), result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestDetectTokensFallsBackOnEmptyText(t *testing.T) {
	primary := &fakeProvider{name: "primary", result: &dto.OCRResult{FullText: "  x "}}
	fallback := &fakeProvider{name: "fallback", result: goodResult()}
	svc := NewSmartOCRService(primary, fallback)

	result, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.NoError(t, err)
	assert.Equal(t, goodResult(), result)
	assert.Equal(t, 1, fallback.calls)
}

func TestDetectTokensAllProvidersFail(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("quota exceeded")}
	fallback := &fakeProvider{name: "fallback", err: errors.New("connection refused")}
	svc := NewSmartOCRService(primary, fallback)

	_, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDetectTokensNoMeaningfulTextAnywhere(t *testing.T) {
	primary := &fakeProvider{name: "primary", result: &dto.OCRResult{}}
	fallback := &fakeProvider{name: "fallback", result: &dto.OCRResult{}}
	svc := NewSmartOCRService(primary, fallback)

	result, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Empty(t, result.Words)
	}
}

func TestNewSmartOCRServicePromotesFallback(t *testing.T) {
	fallback := &fakeProvider{name: "fallback", result: goodResult()}
	svc := NewSmartOCRService(nil, fallback)

	result, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.NoError(t, err)
	assert.Equal(t, goodResult(), result)
	assert.Equal(t, map[string]string{"primary": "fallback"}, svc.Status())
}

func TestDetectTokensNoProviders(t *testing.T) {
	svc := NewSmartOCRService(nil, nil)

	_, err := svc.DetectTokens(context.Background(), []byte("img"))
	assert.Error(t, err)
}

func TestHasMeaningfulText(t *testing.T) {
	assert.False(t, hasMeaningfulText(nil))
	assert.False(t, hasMeaningfulText(&dto.OCRResult{}))
	assert.False(t, hasMeaningfulText(&dto.OCRResult{FullText: "  short  "}))
	assert.True(t, hasMeaningfulText(&dto.OCRResult{FullText: "PROVINSI DKI JAKARTA"}))

	// With no aggregate text the word labels are summed instead.
	words := &dto.OCRResult{Words: []dto.TextAnnotation{
		{Description: "PROVINSI"},
		{Description: "JAKARTA"},
	}}
	assert.True(t, hasMeaningfulText(words))
}
