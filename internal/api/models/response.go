package models

import "github.com/sipgo/sip-calculator/internal/domain"

// ErrorResponse is the error envelope returned on any non-2xx status.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProjectionResponse wraps projection rows along with a flag indicating
// whether the rows were served from the result cache.
type ProjectionResponse struct {
	Rows   []domain.ProjectionRow `json:"rows"`
	Cached bool                   `json:"cached"`
}
