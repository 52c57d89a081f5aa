// Package extractor resolves the typed fields of an Indonesian identity
// card (KTP) from the unordered word tokens a text-recognition engine
// produces. It fuzzy-locates each printed field label, gathers the
// co-linear value tokens around it and normalizes the result, tolerating
// OCR typos and a few degrees of capture rotation.
//
// The package is pure: no I/O, no shared state between calls. The token
// input must be word-level only; whole-image aggregate entries some
// providers emit first have to be stripped at the provider boundary.
package extractor

import (
	"strings"

	"github.com/adityapw/ktp-ocr-service/dto"
)

// Defaults for the geometric filters. They assume capture resolutions in
// the range typical for phone photos of a card; tune via Config when the
// input resolution differs.
const (
	DefaultRowBandPx         = 300
	DefaultAngleToleranceDeg = 3
)

// Config tunes the geometric filters of value collection.
type Config struct {
	// RowBandPx is the maximum vertical distance in pixels between the
	// anchor label and a candidate value token.
	RowBandPx float64
	// AngleToleranceDeg is the maximum difference in degrees between the
	// anchor's edge angle and the anchor-to-candidate direction.
	AngleToleranceDeg float64
}

// DefaultConfig returns the stock geometry configuration.
func DefaultConfig() Config {
	return Config{
		RowBandPx:         DefaultRowBandPx,
		AngleToleranceDeg: DefaultAngleToleranceDeg,
	}
}

// Extractor resolves KTP fields from recognition tokens. It holds only
// configuration and is safe for concurrent use; all per-call state lives
// on the stack of Extract.
type Extractor struct {
	cfg Config
}

// New creates an Extractor. Zero config values fall back to the defaults.
func New(cfg Config) *Extractor {
	if cfg.RowBandPx == 0 {
		cfg.RowBandPx = DefaultRowBandPx
	}
	if cfg.AngleToleranceDeg == 0 {
		cfg.AngleToleranceDeg = DefaultAngleToleranceDeg
	}
	return &Extractor{cfg: cfg}
}

// Extract resolves all KTP fields from word-level annotations. An empty
// or fully malformed token list yields a record with every field nil;
// extraction never fails on bad input, it only leaves fields unset.
func (e *Extractor) Extract(words []dto.TextAnnotation) dto.KTPData {
	tokens := ConvertAnnotations(words)
	if len(tokens) == 0 {
		return dto.KTPData{}
	}

	rctx := newResolutionContext()
	raw := make(map[string]string, len(fieldSpecs))

	for _, spec := range fieldSpecs {
		value, ok := e.extractField(tokens, spec, rctx)
		if !ok {
			continue
		}
		value = strings.ReplaceAll(value, ": ", "")
		value = strings.ReplaceAll(value, ":", "")
		raw[spec.Name] = value
	}

	return buildRecord(raw)
}

// extractField runs label location, value collection and the per-field
// policy for a single field.
func (e *Extractor) extractField(tokens []Token, spec FieldSpec, rctx *resolutionContext) (string, bool) {
	if spec.Name == FieldNama {
		tokens = dropProvinceLeakage(tokens)
	}

	index, keyword, ok := e.locateLabel(tokens, spec)
	if !ok {
		return "", false
	}

	values := e.collectValues(tokens, tokens[index])
	return resolveField(spec, keyword, values, rctx)
}
