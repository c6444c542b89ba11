// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package matcher

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Pattern is a compiled route pattern.
type Pattern struct {
	source string
	glob   glob.Glob
}

// String returns the pattern as it was configured.
func (p Pattern) String() string {
	return p.source
}

// Match reports whether route matches the pattern as a whole.
func (p Pattern) Match(route string) bool {
	return p.glob.Match(route)
}

// Patterns is an ordered list of compiled route patterns. The order has no
// effect on the result: the first match anywhere in the list is sufficient.
type Patterns []Pattern

// Compile compiles every source pattern. The glob is built without
// separators, so "*" crosses "/" the same way fnmatch does without
// FNM_PATHNAME.
func Compile(sources ...string) (Patterns, error) {
	patterns := make(Patterns, 0, len(sources))
	for _, source := range sources {
		g, err := glob.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, source, err)
		}
		patterns = append(patterns, Pattern{source: source, glob: g})
	}

	return patterns, nil
}

// MustCompile is like [Compile] but panics on an invalid pattern.
// It is meant for tests and package-level defaults.
func MustCompile(sources ...string) Patterns {
	patterns, err := Compile(sources...)
	if err != nil {
		panic(err)
	}
	return patterns
}

// Match reports whether route matches any pattern. An empty list never
// matches.
func (ps Patterns) Match(route string) bool {
	for _, p := range ps {
		if p.Match(route) {
			return true
		}
	}
	return false
}

// Strings returns the configured sources.
func (ps Patterns) Strings() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.source
	}
	return out
}

// Matches compiles patterns and reports whether route matches any of them.
// Invalid patterns never match.
func Matches(route string, patterns []string) bool {
	for _, source := range patterns {
		g, err := glob.Compile(source)
		if err != nil {
			continue
		}
		if g.Match(route) {
			return true
		}
	}
	return false
}
