// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package matcher

import (
	"fmt"

	"github.com/MKhiriev/go-secure-routes/models"
)

// Policy is the immutable pair of required-secure and excluded-from-secure
// route patterns. It is built once and is safe for concurrent use.
type Policy struct {
	required Patterns
	excluded Patterns
}

// NewPolicy compiles both lists. An error wraps [ErrInvalidPattern].
func NewPolicy(required, excluded []string) (*Policy, error) {
	req, err := Compile(required...)
	if err != nil {
		return nil, fmt.Errorf("error compiling required-secure routes: %w", err)
	}

	exc, err := Compile(excluded...)
	if err != nil {
		return nil, fmt.Errorf("error compiling excluded-from-secure routes: %w", err)
	}

	return &Policy{required: req, excluded: exc}, nil
}

// Required returns the required-secure patterns.
func (p *Policy) Required() Patterns {
	return p.required
}

// Excluded returns the excluded-from-secure patterns.
func (p *Policy) Excluded() Patterns {
	return p.excluded
}

// Classify resolves route to the requirement of the first list it matches,
// checking the excluded list first.
func (p *Policy) Classify(route string) models.Requirement {
	if p.excluded.Match(route) {
		return models.RequirementExcluded
	}
	if p.required.Match(route) {
		return models.RequirementRequired
	}
	return models.RequirementDefault
}

// IsSecureRequired reports whether route must be served over a secure
// connection:
//  1. a route matching the excluded list never requires it;
//  2. with no required list every other route requires it;
//  3. otherwise only routes matching the required list require it.
func (p *Policy) IsSecureRequired(route string) bool {
	switch p.Classify(route) {
	case models.RequirementExcluded:
		return false
	case models.RequirementRequired:
		return true
	default:
		return len(p.required) == 0
	}
}

// IsSecureRequired is the functional form of [Policy.IsSecureRequired].
// A nil policy requires security for every route.
func IsSecureRequired(route string, policy *Policy) bool {
	if policy == nil {
		return true
	}
	return policy.IsSecureRequired(route)
}
