package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/adityapw/ktp-ocr-service/dto"
)

// PaddleClient calls a PaddleOCR serving instance over its HTTP API.
// It is the fallback token provider when Google Vision is unavailable
// or returns nothing useful.
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewPaddleClient creates a PaddleOCR HTTP client for the given API URL,
// e.g. "http://paddleocr:8866/predict/ocr_system".
func NewPaddleClient(apiURL string) *PaddleClient {
	return &PaddleClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Name identifies the provider in logs and health reporting.
func (p *PaddleClient) Name() string {
	return "paddle_ocr"
}

// paddleLine is one recognized line in the PaddleOCR serving response.
// TextRegion holds the four box corners as [x, y] pairs, clockwise from
// the top-left of the text.
type paddleLine struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	TextRegion [][]float64 `json:"text_region"`
}

type paddleResponse struct {
	Results [][]paddleLine `json:"results"`
}

// DetectTokens sends the image to PaddleOCR and converts the response
// into the provider-neutral annotation contract. PaddleOCR emits no
// whole-image aggregate entry, so every result line becomes a word
// token; FullText is the lines joined for the meaningful-content check.
func (p *PaddleClient) DetectTokens(ctx context.Context, imageData []byte) (*dto.OCRResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(imageData)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	result := &dto.OCRResult{}
	if len(decoded.Results) == 0 {
		return result, nil
	}

	var fullText strings.Builder
	for _, line := range decoded.Results[0] {
		if len(line.TextRegion) < 4 {
			continue
		}
		word := dto.TextAnnotation{Description: line.Text}
		for _, corner := range line.TextRegion[:4] {
			if len(corner) < 2 {
				continue
			}
			word.BoundingPoly.Vertices = append(word.BoundingPoly.Vertices, dto.Vertex{
				X: corner[0],
				Y: corner[1],
			})
		}
		result.Words = append(result.Words, word)

		fullText.WriteString(line.Text)
		fullText.WriteString("\n")
	}
	result.FullText = fullText.String()

	log.Printf("PaddleOCR returned %d text lines", len(result.Words))
	return result, nil
}
