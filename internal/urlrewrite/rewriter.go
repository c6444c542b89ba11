// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlrewrite

import (
	"strings"

	"github.com/MKhiriev/go-secure-routes/internal/matcher"
	"github.com/MKhiriev/go-secure-routes/models"
)

const schemeSeparator = "://"

// Rewriter injects an absolute origin into relative URLs whose route needs
// the other protocol than the current connection. It is immutable after
// construction and safe for concurrent use.
type Rewriter struct {
	policy  *matcher.Policy
	enabled models.Toggle
}

// NewRewriter returns a [Rewriter] for policy. enabled is resolved on every
// call.
func NewRewriter(policy *matcher.Policy, enabled models.Toggle) (*Rewriter, error) {
	if policy == nil {
		return nil, ErrNoPolicy
	}

	return &Rewriter{policy: policy, enabled: enabled}, nil
}

// Decide returns the origin to prefix url with, if any.
//
// Absolute URLs are never touched. A route matching the excluded list gets
// the plain origin while the connection is secure; a route matching the
// required list gets the secure origin while the connection is plain. The
// origin keeps the request host and only swaps the scheme.
func (r *Rewriter) Decide(url, route string, conn models.ConnectionState) models.RewriteDecision {
	if !r.enabled.Enabled() || conn.Host == "" || strings.Contains(url, schemeSeparator) {
		return models.RewriteDecision{}
	}

	route = strings.Trim(route, "/")

	switch r.policy.Classify(route) {
	case models.RequirementExcluded:
		if conn.Protocol == models.Secure {
			return models.RewriteDecision{Origin: models.Insecure.Origin(conn.Host)}
		}
	case models.RequirementRequired:
		if conn.Protocol == models.Insecure {
			return models.RewriteDecision{Origin: models.Secure.Origin(conn.Host)}
		}
	}

	return models.RewriteDecision{}
}

// Rewrite applies [Rewriter.Decide] to url.
func (r *Rewriter) Rewrite(url, route string, conn models.ConnectionState) string {
	return r.Decide(url, route, conn).Apply(url)
}
