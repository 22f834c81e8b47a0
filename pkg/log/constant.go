package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key the HTTP middleware stores the request ID under.
type RequestIDKey struct{}
