package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Client is the interface for uploading extracted assets. The signature
// pipeline only needs uploads; other operations stay out of the contract.
type Client interface {
	UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*UploadResult, error)
	Close() error
}

// UploadResult contains the result of an upload operation.
type UploadResult struct {
	ObjectName string `json:"object_name"`
	PublicURL  string `json:"public_url"`
	Size       int64  `json:"size"`
}

// GenerateSignatureObjectName returns a unique object name for an
// extracted signature image.
func GenerateSignatureObjectName() string {
	return fmt.Sprintf("signatures/%d_%s.png", time.Now().Unix(), uuid.New().String())
}
