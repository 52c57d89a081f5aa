package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IsAllowedFile checks the filename extension against the allowed list.
func IsAllowedFile(filename string, allowedExtensions []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, allowed := range allowedExtensions {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

// ValidateFileSize checks an upload against the configured maximum.
func ValidateFileSize(size, maxSize int64) bool {
	return size > 0 && size <= maxSize
}

// GenerateUniqueFilename keeps the original extension but replaces the
// name with a UUID, so concurrent uploads never collide.
func GenerateUniqueFilename(originalFilename string) string {
	idx := strings.LastIndex(originalFilename, ".")
	ext := ""
	if idx >= 0 {
		ext = strings.ToLower(originalFilename[idx:])
	}
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}

// InferMimeType infers a MIME type from the file extension.
func InferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	}
	return ""
}
