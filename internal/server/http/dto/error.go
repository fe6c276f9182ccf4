package dto

// ErrorResponse carries a human-readable message for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
