package extractor

import (
	"github.com/adityapw/ktp-ocr-service/dto"
)

// Token is one recognized text fragment with its quadrilateral box in
// pixel space. Corner 1 is the top-left of the (possibly rotated) text,
// corners run clockwise. W and H are signed: a rotated box may yield
// negative values, and the geometry filters depend on that.
type Token struct {
	Label string

	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
	X4, Y4 float64

	W, H float64
}

// ConvertAnnotations turns word-level provider annotations into tokens,
// preserving provider order. Entries with fewer than four vertices are
// dropped.
//
// The input must contain word-level annotations only. Providers that emit
// a whole-image aggregate entry (Google Vision's textAnnotations[0]) must
// strip it before this point; see dto.OCRResult.
func ConvertAnnotations(words []dto.TextAnnotation) []Token {
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		v := w.BoundingPoly.Vertices
		if len(v) < 4 {
			continue
		}
		t := Token{
			Label: w.Description,
			X1:    v[0].X, Y1: v[0].Y,
			X2: v[1].X, Y2: v[1].Y,
			X3: v[2].X, Y3: v[2].Y,
			X4: v[3].X, Y4: v[3].Y,
		}
		t.W = t.X3 - t.X1
		t.H = t.Y3 - t.Y1
		tokens = append(tokens, t)
	}
	return tokens
}
