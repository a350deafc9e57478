package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RelayError is the flat error body the booking and lead endpoints return.
type RelayError struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
