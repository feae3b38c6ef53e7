package handlers

// ErrorResponse is the JSON body returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: trip not found
	Error string `json:"error"`
}
