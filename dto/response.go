package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SignatureDimensions describes the cropped signature box.
type SignatureDimensions struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SignatureResponse is the signature extraction endpoint response.
type SignatureResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	SignatureURL string               `json:"signature_url,omitempty"`
	Confidence   float64              `json:"confidence,omitempty"`
	Dimensions   *SignatureDimensions `json:"dimensions,omitempty"`
}
