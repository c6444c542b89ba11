// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routing

import (
	"net/url"
	"strings"
	"sync"
)

// Mode tells what a rule is used for.
type Mode int

const (
	// ModeDefault rules both parse incoming URLs and generate URLs.
	ModeDefault Mode = iota
	// ModeParsingOnly rules only parse incoming URLs.
	ModeParsingOnly
	// ModeCreationOnly rules only generate URLs.
	ModeCreationOnly
)

// Rule maps a URL path pattern to a route identifier.
//
// Both the route and the pattern may contain "<name>" placeholders, e.g.
// route "help/<action>" with pattern "/help/<action>". The host and the URL
// template are guarded together: readers always observe a template that
// matches the host.
type Rule struct {
	route   string
	pattern string
	mode    Mode

	mu       sync.RWMutex
	host     string
	template string
}

// RuleOption configures a [Rule].
type RuleOption func(*Rule)

// WithHost binds the rule to an origin such as "http://partner.example.com".
func WithHost(host string) RuleOption {
	return func(r *Rule) {
		r.host = strings.TrimSuffix(host, "/")
	}
}

// WithMode sets the rule mode.
func WithMode(mode Mode) RuleOption {
	return func(r *Rule) {
		r.mode = mode
	}
}

// NewRule returns a rule mapping pattern (a path starting with "/") to route.
func NewRule(pattern, route string, opts ...RuleOption) *Rule {
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}

	r := &Rule{
		route:   strings.Trim(route, "/"),
		pattern: pattern,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.template = r.host + r.pattern

	return r
}

// Route returns the route identifier, placeholders included.
func (r *Rule) Route() string {
	return r.route
}

// Pattern returns the URL path pattern.
func (r *Rule) Pattern() string {
	return r.pattern
}

// Mode returns the rule mode.
func (r *Rule) Mode() Mode {
	return r.mode
}

// ParsingOnly reports whether the rule never generates URLs.
func (r *Rule) ParsingOnly() bool {
	return r.mode == ModeParsingOnly
}

// Host returns the bound origin, or an empty string.
func (r *Rule) Host() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.host
}

// Template returns the URL template the rule emits URLs from.
func (r *Rule) Template() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.template
}

// BindHost sets the origin and regenerates the template under one lock.
// A rule that already has a host, or is parse-only, is left untouched.
func (r *Rule) BindHost(host string) bool {
	host = strings.TrimSuffix(host, "/")
	if host == "" || r.ParsingOnly() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.host != "" {
		return false
	}
	r.host = host
	r.template = host + r.pattern

	return true
}

// CreateURL builds the URL for route from the rule template. Placeholders
// are filled from the route segments first and from params second; params
// not consumed by the template are appended as a query string. It reports
// false when the rule cannot generate route.
func (r *Rule) CreateURL(route string, params url.Values) (string, bool) {
	if r.ParsingOnly() {
		return "", false
	}

	values, ok := r.matchRoute(route)
	if !ok {
		return "", false
	}

	template := r.Template()

	used := make(map[string]struct{})
	var b strings.Builder
	for {
		start := strings.IndexByte(template, '<')
		if start < 0 {
			b.WriteString(template)
			break
		}
		end := strings.IndexByte(template[start:], '>')
		if end < 0 {
			b.WriteString(template)
			break
		}
		end += start

		name := template[start+1 : end]
		value, found := values[name]
		if !found {
			if value = params.Get(name); value == "" {
				return "", false
			}
			used[name] = struct{}{}
		}

		b.WriteString(template[:start])
		b.WriteString(url.PathEscape(value))
		template = template[end+1:]
	}

	query := make(url.Values)
	for key, vals := range params {
		if _, skip := used[key]; skip {
			continue
		}
		query[key] = vals
	}

	out := b.String()
	if len(query) > 0 {
		out += "?" + query.Encode()
	}

	return out, true
}

// matchRoute matches a concrete route against the rule route segment by
// segment and returns the placeholder values.
func (r *Rule) matchRoute(route string) (map[string]string, bool) {
	want := strings.Split(r.route, "/")
	got := strings.Split(strings.Trim(route, "/"), "/")
	if len(want) != len(got) {
		return nil, false
	}

	values := make(map[string]string)
	for i, segment := range want {
		if name, ok := placeholder(segment); ok {
			if got[i] == "" {
				return nil, false
			}
			values[name] = got[i]
			continue
		}
		if segment != got[i] {
			return nil, false
		}
	}

	return values, true
}

// resolveRoute fills the rule route placeholders with lookup results.
func (r *Rule) resolveRoute(lookup func(name string) string) string {
	segments := strings.Split(r.route, "/")
	for i, segment := range segments {
		if name, ok := placeholder(segment); ok {
			segments[i] = lookup(name)
		}
	}
	return strings.Join(segments, "/")
}

// chiPattern translates "<name>" placeholders into chi "{name}" parameters.
func (r *Rule) chiPattern() string {
	return strings.NewReplacer("<", "{", ">", "}").Replace(r.pattern)
}

func placeholder(segment string) (string, bool) {
	if len(segment) > 2 && segment[0] == '<' && segment[len(segment)-1] == '>' {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}
