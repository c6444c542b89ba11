// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"github.com/MKhiriev/go-secure-routes/internal/matcher"
	"github.com/MKhiriev/go-secure-routes/models"
)

// Mode selects whether the request method takes part in the decision.
type Mode int

const (
	// Strict is method-aware: unsafe requests are never redirected, and an
	// unsafe request to a secure-required route over plain HTTP is rejected.
	Strict Mode = iota
	// Lenient redirects every protocol mismatch to the other protocol and
	// never rejects.
	Lenient
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Evaluate decides what to do with a request for route arriving over conn.
//
// A disabled policy always allows. Otherwise the route requirement from
// [matcher.IsSecureRequired] is reconciled with the connection protocol and,
// in [Strict] mode, with the method classification.
func Evaluate(route string, policy *matcher.Policy, conn models.ConnectionState, enabled bool, mode Mode) models.Verdict {
	if !enabled {
		return models.Allow()
	}

	if matcher.IsSecureRequired(route, policy) {
		if conn.Protocol == models.Secure {
			return models.Allow()
		}
		if mode == Lenient || conn.Method == models.Safe {
			return models.RedirectTo(models.Secure)
		}
		return models.Reject(models.RejectReasonInsecureUnsafe)
	}

	if conn.Protocol == models.Insecure {
		return models.Allow()
	}
	if mode == Lenient || conn.Method == models.Safe {
		return models.RedirectTo(models.Insecure)
	}

	// form submissions are never downgraded
	return models.Allow()
}

// Evaluator is a configured admission check. It is immutable after
// construction and safe for concurrent use.
type Evaluator struct {
	policy  *matcher.Policy
	enabled models.Toggle
	mode    Mode
	methods MethodSet
}

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithEnabled sets the kill switch. It is resolved on every evaluation.
func WithEnabled(enabled models.Toggle) Option {
	return func(e *Evaluator) {
		e.enabled = enabled
	}
}

// WithMode sets the evaluation mode. Default is [Strict].
func WithMode(mode Mode) Option {
	return func(e *Evaluator) {
		e.mode = mode
	}
}

// WithSafeMethods sets the safe method set. Default is [DefaultSafeMethods].
func WithSafeMethods(methods MethodSet) Option {
	return func(e *Evaluator) {
		e.methods = methods
	}
}

// NewEvaluator returns an [Evaluator] for policy.
func NewEvaluator(policy *matcher.Policy, opts ...Option) (*Evaluator, error) {
	if policy == nil {
		return nil, ErrNoPolicy
	}

	e := &Evaluator{
		policy: policy,
		mode:   Strict,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.methods == nil {
		methods, err := NewMethodSet()
		if err != nil {
			return nil, err
		}
		e.methods = methods
	}

	return e, nil
}

// Mode returns the configured evaluation mode.
func (e *Evaluator) Mode() Mode {
	return e.mode
}

// Classify classifies a request method against the configured safe set.
func (e *Evaluator) Classify(method string) models.MethodClass {
	return e.methods.Classify(method)
}

// Enabled resolves the kill switch.
func (e *Evaluator) Enabled() bool {
	return e.enabled.Enabled()
}

// Evaluate decides what to do with a request for route arriving over conn.
func (e *Evaluator) Evaluate(route string, conn models.ConnectionState) models.Verdict {
	return Evaluate(route, e.policy, conn, e.enabled.Enabled(), e.mode)
}
