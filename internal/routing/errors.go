package routing

import "errors"

var (
	// ErrEmptyRoute is returned by URL builders for an empty route.
	ErrEmptyRoute = errors.New("empty route")

	// ErrDuplicateAction is returned by [Manager.Mount] when two actions
	// share a route.
	ErrDuplicateAction = errors.New("duplicate action route")

	// ErrInvalidScheme is returned by [Manager.CreateAbsoluteURL] for a
	// scheme other than http or https.
	ErrInvalidScheme = errors.New("invalid url scheme")
)
