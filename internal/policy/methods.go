package policy

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secure-routes/models"
)

// DefaultSafeMethods are the methods classified as safe when no set is
// configured.
var DefaultSafeMethods = []string{http.MethodGet, http.MethodOptions}

// MethodSet is the set of request methods that only read state.
type MethodSet map[string]struct{}

// NewMethodSet builds a set from method names. Names are upper-cased; an
// empty list yields [DefaultSafeMethods].
func NewMethodSet(methods ...string) (MethodSet, error) {
	if len(methods) == 0 {
		methods = DefaultSafeMethods
	}

	set := make(MethodSet, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			return nil, fmt.Errorf("%w: empty method in safe method set", ErrInvalidMethod)
		}
		set[m] = struct{}{}
	}

	return set, nil
}

// Classify returns [models.Safe] for methods in the set and [models.Unsafe]
// for everything else.
func (s MethodSet) Classify(method string) models.MethodClass {
	if _, ok := s[strings.ToUpper(method)]; ok {
		return models.Safe
	}
	return models.Unsafe
}
