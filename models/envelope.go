package models

// APIResponse is the uniform envelope wrapped around every /api payload.
type APIResponse struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail(msg string) APIResponse {
	return APIResponse{Success: false, Error: &msg}
}
