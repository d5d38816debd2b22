// internal/api/types/response.go
package types

// ErrorResponse is the uniform error envelope for API failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps list endpoints so the element count travels with the
// payload. T is the element type.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}
