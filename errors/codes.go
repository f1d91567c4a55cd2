package errors

// ErrorCode is a stable machine-readable error identifier
type ErrorCode int32

const (
	ErrorCode_UNKNOWN             ErrorCode = 0
	ErrorCode_INTERNAL            ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 2
	ErrorCode_NOT_FOUND           ErrorCode = 3
	ErrorCode_PERMISSION_DENIED   ErrorCode = 4
	ErrorCode_UNAUTHENTICATED     ErrorCode = 5
	ErrorCode_HTTP_OK             ErrorCode = 200
	ErrorCode_MISSING_TRANSCRIPT  ErrorCode = 1001
	ErrorCode_CONFIGURATION       ErrorCode = 1002
	ErrorCode_PROVIDER_FAILED     ErrorCode = 1003
	ErrorCode_EMPTY_REPLY         ErrorCode = 1004
	ErrorCode_MALFORMED_REPLY     ErrorCode = 1005
	ErrorCode_BACKEND_UNREACHABLE ErrorCode = 1006
	ErrorCode_INVALID_CREDENTIALS ErrorCode = 1007
	ErrorCode_INVALID_TOKEN       ErrorCode = 1008
	ErrorCode_SESSION_EXPIRED     ErrorCode = 1009
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:             "UNKNOWN",
	ErrorCode_INTERNAL:            "INTERNAL_ERROR",
	ErrorCode_INVALID_ARGUMENT:    "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:           "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:   "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:     "UNAUTHENTICATED",
	ErrorCode_HTTP_OK:             "OK",
	ErrorCode_MISSING_TRANSCRIPT:  "MISSING_TRANSCRIPT",
	ErrorCode_CONFIGURATION:       "CONFIGURATION_ERROR",
	ErrorCode_PROVIDER_FAILED:     "PROVIDER_FAILED",
	ErrorCode_EMPTY_REPLY:         "EMPTY_REPLY",
	ErrorCode_MALFORMED_REPLY:     "MALFORMED_REPLY",
	ErrorCode_BACKEND_UNREACHABLE: "BACKEND_UNREACHABLE",
	ErrorCode_INVALID_CREDENTIALS: "INVALID_CREDENTIALS",
	ErrorCode_INVALID_TOKEN:       "INVALID_TOKEN",
	ErrorCode_SESSION_EXPIRED:     "SESSION_EXPIRED",
}

// String returns the stable name for the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
