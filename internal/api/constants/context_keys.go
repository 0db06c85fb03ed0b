package constants

// Context keys set by middleware
const (
	ContextKeyRawBody   = "rawBody"
	ContextKeyRequestID = "RequestID"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)
