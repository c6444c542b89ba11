// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Requirement is the security requirement a route resolves to against the
// configured include/exclude pattern lists.
type Requirement int

const (
	// RequirementDefault means no pattern list matched the route.
	RequirementDefault Requirement = iota
	// RequirementRequired means the route matched the required-secure list.
	RequirementRequired
	// RequirementExcluded means the route matched the excluded-from-secure
	// list. It takes precedence over RequirementRequired.
	RequirementExcluded
)

// String implements fmt.Stringer.
func (r Requirement) String() string {
	switch r {
	case RequirementRequired:
		return "required"
	case RequirementExcluded:
		return "excluded"
	default:
		return "default"
	}
}

// VerdictKind is the outcome of an admission check.
type VerdictKind int

const (
	// VerdictAllow lets the request proceed to its handler.
	VerdictAllow VerdictKind = iota
	// VerdictRedirect asks the caller to redirect to Verdict.Protocol and
	// stop handling.
	VerdictRedirect
	// VerdictReject asks the caller to fail the request with a client error.
	VerdictReject
)

// String implements fmt.Stringer.
func (k VerdictKind) String() string {
	switch k {
	case VerdictRedirect:
		return "redirect"
	case VerdictReject:
		return "reject"
	default:
		return "allow"
	}
}

// RejectReasonInsecureUnsafe is the reason carried by a Reject verdict for an
// unsafe request that reached a secure-required route over plain HTTP.
const RejectReasonInsecureUnsafe = "insecure unsafe request to secure-required route"

// Verdict is the decision of the connection policy for a single request.
type Verdict struct {
	Kind VerdictKind

	// Protocol is the redirect target. Meaningful only for VerdictRedirect.
	Protocol Protocol

	// Reason explains a rejection. Meaningful only for VerdictReject.
	Reason string
}

// Allow returns a verdict that lets the request continue.
func Allow() Verdict {
	return Verdict{Kind: VerdictAllow}
}

// RedirectTo returns a verdict redirecting the request to protocol p.
func RedirectTo(p Protocol) Verdict {
	return Verdict{Kind: VerdictRedirect, Protocol: p}
}

// Reject returns a verdict failing the request with the given reason.
func Reject(reason string) Verdict {
	return Verdict{Kind: VerdictReject, Reason: reason}
}

// RewriteDecision is the outcome of the URL protocol rewriter for one
// generated URL. An empty Origin means the URL is left unchanged.
type RewriteDecision struct {
	// Origin is "scheme://host" to be prefixed to the relative URL.
	Origin string
}

// Unchanged reports whether the URL must be returned as generated.
func (d RewriteDecision) Unchanged() bool {
	return d.Origin == ""
}

// Apply prefixes url with the decided origin, if any.
func (d RewriteDecision) Apply(url string) string {
	if d.Unchanged() {
		return url
	}
	return d.Origin + url
}
