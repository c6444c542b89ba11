package models

// MethodClass classifies a request method by whether it may change state.
type MethodClass int

const (
	// Safe methods only read state and can be replayed after a redirect.
	Safe MethodClass = iota
	// Unsafe methods submit data; replaying them over another protocol may
	// lose or duplicate the submission.
	Unsafe
)

// String implements fmt.Stringer.
func (c MethodClass) String() string {
	if c == Unsafe {
		return "unsafe"
	}
	return "safe"
}

// ConnectionState is the observed transport of the current request.
//
// It is built fresh for every request and passed explicitly to every
// decision function; nothing in the decision layer reads the request itself.
type ConnectionState struct {
	// Protocol is the protocol the request actually arrived over.
	Protocol Protocol

	// Method is the classification of the request method.
	Method MethodClass

	// Host is the request host (with port, if any). It is used to derive
	// absolute origins when only the scheme has to change.
	Host string
}

// IsSecure reports whether the connection arrived over TLS.
func (c ConnectionState) IsSecure() bool {
	return c.Protocol == Secure
}
