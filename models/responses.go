package models

// ErrorResponse is the JSON document written when a request payload is
// rejected before reaching its handler.
type ErrorResponse struct {
	// Error is the machine-readable rejection class, e.g. "key-missing",
	// "invalid-type-or-value" or "invalid-content-type".
	Error string `json:"error"`

	// Message is a human-readable description of the first violation found.
	Message string `json:"message"`

	// Key is the dotted path of the offending key ("user.address.zip").
	// Empty when the payload root itself was rejected.
	Key string `json:"key,omitempty"`

	// TraceID matches the X-Trace-ID response header.
	TraceID string `json:"trace_id,omitempty"`
}

// VersionResponse reports build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// AcceptedResponse is written by the demo routes once a payload passed its
// decorator.
type AcceptedResponse struct {
	Route   string `json:"route"`
	Payload any    `json:"payload,omitempty"`
}
