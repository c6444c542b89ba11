package models

// Toggle is an on/off switch that is either a constant or a predicate
// evaluated at decision time. It is typically used to disable enforcement
// per environment without rebuilding the middleware.
//
// The zero Toggle is enabled.
type Toggle struct {
	constant  bool
	set       bool
	predicate func() bool
}

// Constant returns a Toggle that always resolves to the given value.
// Constant(false) is the kill switch.
func Constant(enabled bool) Toggle {
	return Toggle{constant: enabled, set: true}
}

// Predicate returns a Toggle that calls fn every time it is resolved.
// A nil fn resolves to enabled.
func Predicate(fn func() bool) Toggle {
	return Toggle{predicate: fn, set: fn != nil}
}

// Enabled resolves the toggle.
func (t Toggle) Enabled() bool {
	if !t.set {
		return true
	}
	if t.predicate != nil {
		return t.predicate()
	}
	return t.constant
}
