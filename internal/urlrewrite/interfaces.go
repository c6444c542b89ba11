// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package urlrewrite makes generated URLs carry the protocol their
// destination route needs.
//
// Two strategies are provided, both driven by the same [matcher.Policy] that
// the admission check uses:
//
//   - [Rewriter] post-processes a relative URL right after it is generated and
//     prefixes it with the origin of the other protocol when the route and
//     the current connection disagree;
//   - [Annotator] walks the routing table once and binds an absolute origin
//     to every matching rule, so URLs built from those rules are absolute
//     from then on.
package urlrewrite

//go:generate mockgen -source=interfaces.go -destination=../mock/rule_table_mock.go -package=mock

// Rule is a routing rule the [Annotator] may bind to an absolute origin.
type Rule interface {
	// Route returns the route identifier the rule generates URLs for. It may
	// contain placeholders such as "help/<action>".
	Route() string

	// Host returns the origin already bound to the rule, or an empty string.
	Host() string

	// ParsingOnly reports whether the rule is only used to parse incoming
	// URLs and never to generate them.
	ParsingOnly() bool

	// BindHost sets the rule origin and regenerates its URL template in one
	// step, as observed by concurrent readers. It reports false and leaves
	// the rule untouched when the rule already has a host or is parse-only.
	BindHost(host string) bool
}

// RuleTable is the ordered routing-rule collection of the host router.
type RuleTable interface {
	// Rules returns the rules in table order.
	Rules() []Rule
}
