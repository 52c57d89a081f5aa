package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityapw/ktp-ocr-service/storage"
)

type fakeStore struct {
	lastObject      string
	lastContentType string
	lastData        []byte
	err             error
}

func (f *fakeStore) UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.lastObject = objectName
	f.lastContentType = contentType
	f.lastData = data
	return &storage.UploadResult{
		ObjectName: objectName,
		PublicURL:  "https://storage.example.com/" + objectName,
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeStore) Close() error { return nil }

// signaturePhoto renders a white page with a solid dark block standing in
// for the handwriting.
func signaturePhoto(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for y := 60; y < 120; y++ {
		for x := 50; x < 150; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func blankPhoto(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExtractAndUpload(t *testing.T) {
	store := &fakeStore{}
	svc := NewSignatureService(store)

	result, err := svc.ExtractAndUpload(context.Background(), signaturePhoto(t))
	assert.NoError(t, err)
	if !assert.NotNil(t, result) {
		return
	}

	assert.True(t, result.Success)
	assert.Equal(t, "https://storage.example.com/"+store.lastObject, result.SignatureURL)
	assert.True(t, strings.HasPrefix(store.lastObject, "signatures/"))
	assert.Equal(t, "image/png", store.lastContentType)

	// The crop covers the ink block plus padding, inside the image.
	if assert.NotNil(t, result.Dimensions) {
		assert.Greater(t, result.Dimensions.Width, 0)
		assert.Greater(t, result.Dimensions.Height, 0)
		assert.LessOrEqual(t, result.Dimensions.X+result.Dimensions.Width, 200)
		assert.LessOrEqual(t, result.Dimensions.Y+result.Dimensions.Height, 200)
	}

	// The uploaded bytes decode back to a PNG of the cropped size.
	img, err := png.Decode(bytes.NewReader(store.lastData))
	assert.NoError(t, err)
	if result.Dimensions != nil {
		assert.Equal(t, result.Dimensions.Width, img.Bounds().Dx())
		assert.Equal(t, result.Dimensions.Height, img.Bounds().Dy())
	}
}

func TestExtractAndUploadNoSignature(t *testing.T) {
	svc := NewSignatureService(&fakeStore{})

	_, err := svc.ExtractAndUpload(context.Background(), blankPhoto(t))
	assert.ErrorIs(t, err, ErrNoSignatureFound)
}

func TestExtractAndUploadInvalidImage(t *testing.T) {
	svc := NewSignatureService(&fakeStore{})

	_, err := svc.ExtractAndUpload(context.Background(), []byte("not an image"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSignatureFound)
}

func TestExtractAndUploadNoStorageConfigured(t *testing.T) {
	svc := NewSignatureService(nil)

	_, err := svc.ExtractAndUpload(context.Background(), signaturePhoto(t))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSignatureFound)
}

func TestExtractAndUploadStoreError(t *testing.T) {
	svc := NewSignatureService(&fakeStore{err: errors.New("bucket unavailable")})

	_, err := svc.ExtractAndUpload(context.Background(), signaturePhoto(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
}
