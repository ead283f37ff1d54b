package response

// Resp is the JSON envelope of every API response. ErrorCode is 0 on
// success and the HTTP status otherwise, except for validation errors
// which use 1.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
