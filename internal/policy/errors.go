// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import "errors"

var (
	// ErrPolicyViolation is the error surfaced to HTTP callers for a
	// [models.VerdictReject]. It maps to a client error and is never retried.
	ErrPolicyViolation = errors.New("secure connection policy violation")

	// ErrNoPolicy is returned by [NewEvaluator] when no route policy is
	// provided.
	ErrNoPolicy = errors.New("no route policy provided")

	// ErrInvalidMethod is returned by [NewMethodSet] for an empty method name.
	ErrInvalidMethod = errors.New("invalid request method")
)
