package common

// AnalysisError is the error envelope of the analysis endpoint:
// a human-readable error string and an optional diagnostic detail.
type AnalysisError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorDetail is the machine-readable error body used by the relayed
// routes and the auth endpoints, mirroring the upstream backend's shape
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope wraps an ErrorDetail the way the upstream backend does
type ErrorEnvelope struct {
	Detail ErrorDetail `json:"detail"`
}

// NewErrorEnvelope builds an ErrorEnvelope from a code and message
func NewErrorEnvelope(code, message string) ErrorEnvelope {
	return ErrorEnvelope{Detail: ErrorDetail{Code: code, Message: message}}
}
