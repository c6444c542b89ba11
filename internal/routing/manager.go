// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routing holds the routing table of the application: the ordered
// rules that map URL paths to route identifiers, URL generation for a route,
// and mounting of route actions on a chi router.
package routing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-secure-routes/internal/urlrewrite"
	"github.com/MKhiriev/go-secure-routes/models"
)

// URLRewriter post-processes a URL right after it has been generated for
// route.
type URLRewriter interface {
	Rewrite(url, route string, conn models.ConnectionState) string
}

// Manager is the routing table. The rule list is fixed at construction;
// rules themselves may be bound to a host later (see [Rule.BindHost]).
type Manager struct {
	rules    []*Rule
	baseURL  string
	rewriter URLRewriter
}

// ManagerOption configures a [Manager].
type ManagerOption func(*Manager)

// WithRules appends rules to the table in order.
func WithRules(rules ...*Rule) ManagerOption {
	return func(m *Manager) {
		m.rules = append(m.rules, rules...)
	}
}

// WithBaseURL sets a path prefix (e.g. "/index.php") for every generated
// URL.
func WithBaseURL(baseURL string) ManagerOption {
	return func(m *Manager) {
		m.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithRewriter installs the URL-generation hook.
func WithRewriter(rewriter URLRewriter) ManagerOption {
	return func(m *Manager) {
		m.rewriter = rewriter
	}
}

// NewManager returns a routing table.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rules returns the rules in table order. It implements
// [urlrewrite.RuleTable].
func (m *Manager) Rules() []urlrewrite.Rule {
	rules := make([]urlrewrite.Rule, len(m.rules))
	for i, r := range m.rules {
		rules[i] = r
	}
	return rules
}

// Table returns the concrete rules in table order.
func (m *Manager) Table() []*Rule {
	return m.rules
}

// CreateURL builds the URL for route and passes it through the rewriter.
//
// The first generation-capable rule that matches route wins. Without a
// matching rule the URL falls back to "/<route>". Relative URLs are prefixed
// with the base URL; absolute ones get the base URL inserted after the
// origin.
func (m *Manager) CreateURL(conn models.ConnectionState, route string, params url.Values) (string, error) {
	route = strings.Trim(route, "/")
	if route == "" {
		return "", ErrEmptyRoute
	}

	created := ""
	for _, rule := range m.rules {
		if u, ok := rule.CreateURL(route, params); ok {
			created = u
			break
		}
	}
	if created == "" {
		created = "/" + route
		if len(params) > 0 {
			created += "?" + params.Encode()
		}
	}

	created = m.withBaseURL(created)

	if m.rewriter != nil {
		created = m.rewriter.Rewrite(created, route, conn)
	}

	return created, nil
}

// CreateAbsoluteURL builds the URL for route and forces it absolute with the
// given scheme ("http" or "https"). An empty scheme keeps the scheme of an
// already absolute URL and otherwise uses the connection protocol.
func (m *Manager) CreateAbsoluteURL(conn models.ConnectionState, route string, params url.Values, scheme string) (string, error) {
	switch scheme {
	case "", "http", "https":
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScheme, scheme)
	}

	created, err := m.CreateURL(conn, route, params)
	if err != nil {
		return "", err
	}

	if i := strings.Index(created, "://"); i >= 0 {
		if scheme == "" {
			return created, nil
		}
		return scheme + created[i:], nil
	}

	if scheme == "" {
		scheme = conn.Protocol.Scheme()
	}
	return scheme + "://" + conn.Host + created, nil
}

func (m *Manager) withBaseURL(u string) string {
	if m.baseURL == "" {
		return u
	}

	i := strings.Index(u, "://")
	if i < 0 {
		return m.baseURL + u
	}

	rest := u[i+3:]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return u + m.baseURL
	}
	origin := u[:i+3+slash]
	return origin + m.baseURL + rest[slash:]
}
