package dto

// APIResponse is the envelope every endpoint returns. Exactly one of
// Data and Error is set; both keys are always present so clients can
// branch on error being null.
type APIResponse struct {
	Data  interface{}  `json:"data"`
	Error *ErrorDetail `json:"error"`
}

// NewDataResponse wraps a payload in a success envelope.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// NewErrorResponse wraps an error detail in a failure envelope.
func NewErrorResponse(detail ErrorDetail) APIResponse {
	return APIResponse{Error: &detail}
}

// MessageResponse is the payload for operations with no natural body.
type MessageResponse struct {
	Message string `json:"message"`
}
