package models

// TodoResponse is the uniform envelope returned by all todo operations.
// Invariant: Success=false implies Error is set and Data is absent.
type TodoResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GreetingResponse represents the greeting function's response body
type GreetingResponse struct {
	Message   string `json:"message"`
	Function  string `json:"function"`
	Timestamp string `json:"timestamp"`
}

// SuccessResponse builds a success envelope carrying a payload
func SuccessResponse(data interface{}) *TodoResponse {
	return &TodoResponse{
		Success: true,
		Data:    data,
	}
}

// MessageResponse builds a success envelope carrying only a message
func MessageResponse(message string) *TodoResponse {
	return &TodoResponse{
		Success: true,
		Message: message,
	}
}

// FailureResponse builds a failure envelope; Data is never set on failure
func FailureResponse(err string) *TodoResponse {
	return &TodoResponse{
		Success: false,
		Error:   err,
	}
}
