// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlrewrite

import (
	"strings"
	"sync"

	"github.com/MKhiriev/go-secure-routes/internal/matcher"
	"github.com/MKhiriev/go-secure-routes/models"
)

// Annotator binds absolute origins to routing rules ahead of URL generation.
//
// Rules whose route matches the excluded list are bound to the plain origin,
// rules matching the required list to the secure one. Rules with a host of
// their own and parse-only rules are left alone. The mutation is visible to
// every caller of the routing table, so it is meant to run once, before the
// server accepts traffic.
type Annotator struct {
	table   RuleTable
	policy  *matcher.Policy
	enabled models.Toggle

	// serialises passes so two concurrent Annotate calls cannot both
	// decide on the same unbound rule
	mu sync.Mutex
}

// NewAnnotator returns an [Annotator] over table.
func NewAnnotator(table RuleTable, policy *matcher.Policy, enabled models.Toggle) (*Annotator, error) {
	if table == nil {
		return nil, ErrNoRuleTable
	}
	if policy == nil {
		return nil, ErrNoPolicy
	}

	return &Annotator{table: table, policy: policy, enabled: enabled}, nil
}

// Annotate binds origins built from host (e.g. "domain.com" or
// "domain.com:8443") to every matching rule and returns how many rules were
// bound by this pass. Running it again binds nothing new.
func (a *Annotator) Annotate(host string) (int, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return 0, ErrNoHost
	}

	if !a.enabled.Enabled() {
		return 0, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	bound := 0
	for _, rule := range a.table.Rules() {
		protocol, ok := a.target(rule)
		if !ok {
			continue
		}
		if rule.BindHost(protocol.Origin(host)) {
			bound++
		}
	}

	return bound, nil
}

// target reports which protocol rule must be pinned to, if any.
func (a *Annotator) target(rule Rule) (models.Protocol, bool) {
	if rule.Host() != "" || rule.ParsingOnly() {
		return 0, false
	}

	switch a.policy.Classify(rule.Route()) {
	case models.RequirementExcluded:
		return models.Insecure, true
	case models.RequirementRequired:
		return models.Secure, true
	default:
		return 0, false
	}
}
