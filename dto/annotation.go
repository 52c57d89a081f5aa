package dto

// Vertex is a single corner of a bounding polygon in pixel space.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingPoly is the quadrilateral box around a recognized text fragment.
// Corners run clockwise from the top-left of the (possibly rotated) text.
type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

// TextAnnotation is one recognized text fragment with its bounding box,
// in the shape Google Vision uses for word-level annotations. Providers
// with other native formats convert into this.
type TextAnnotation struct {
	Description  string       `json:"description"`
	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

// OCRResult is the provider-neutral recognition output.
//
// Providers that emit a whole-image aggregate entry (Google Vision returns
// the full page text as textAnnotations[0]) must put it in FullText and
// never in Words: an aggregate token matches every keyword search and would
// corrupt field extraction.
type OCRResult struct {
	FullText string           `json:"full_text"`
	Words    []TextAnnotation `json:"words"`
}
