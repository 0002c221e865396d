package response

// Resp is the standard JSON response body. The Telegram webhook and the
// health probes are the only JSON surfaces of this service, so the envelope
// stays minimal.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
