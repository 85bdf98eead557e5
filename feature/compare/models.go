package compare

import "encoding/json"

// DocumentsRequest carries two inline model exports.
type DocumentsRequest struct {
	First  json.RawMessage `json:"first" validate:"required"`
	Second json.RawMessage `json:"second" validate:"required"`
}

// ObjectsRequest names two objects in the configured bucket.
type ObjectsRequest struct {
	First  string `json:"first" query:"first" validate:"required,max=1024"`
	Second string `json:"second" query:"second" validate:"required,max=1024"`
	Format string `json:"format,omitempty" query:"format" validate:"omitempty,oneof=text json"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
