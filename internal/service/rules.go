package service

import "github.com/MKhiriev/go-secure-routes/internal/routing"

// PartnerHost is the origin the partner rule is pinned to.
const PartnerHost = "http://partner.example.com"

// DefaultRules returns a fresh copy of the application routing table.
// Rules are mutable (see [routing.Rule.BindHost]), so every Services value
// gets its own.
func DefaultRules() []*routing.Rule {
	return []*routing.Rule{
		routing.NewRule("/", "site/index"),
		routing.NewRule("/login", "auth/login"),
		routing.NewRule("/logout", "auth/logout"),
		routing.NewRule("/cart", "payment/cart/index"),
		routing.NewRule("/help/<action>", "help/<action>"),
		routing.NewRule("/api/ping", "api/ping", routing.WithMode(routing.ModeParsingOnly)),
		routing.NewRule("/partner", "partner/index", routing.WithHost(PartnerHost)),
	}
}
