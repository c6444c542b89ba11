package models

// PageResponse is the body of every application page. Links are generated
// per request, so their scheme reflects the protocol each target route
// needs as seen from the current connection.
type PageResponse struct {
	// Route is the concrete route that handled the request.
	Route string `json:"route"`

	// Protocol is the protocol the request arrived over.
	Protocol string `json:"protocol"`

	// Message is a short human readable status.
	Message string `json:"message,omitempty"`

	// Links maps link names to generated URLs.
	Links map[string]string `json:"links,omitempty"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`

	// TraceID correlates the response with server logs.
	TraceID string `json:"trace_id,omitempty"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
