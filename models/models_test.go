package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocol_SchemeAndOpposite(t *testing.T) {
	assert.Equal(t, "http", Insecure.Scheme())
	assert.Equal(t, "https", Secure.Scheme())
	assert.Equal(t, Secure, Insecure.Opposite())
	assert.Equal(t, Insecure, Secure.Opposite())
	assert.Equal(t, "https://domain.com", Secure.Origin("domain.com"))
	assert.Equal(t, "http://domain.com:8080", Insecure.Origin("domain.com:8080"))
}

func TestToggle(t *testing.T) {
	calls := 0
	counting := Predicate(func() bool {
		calls++
		return calls%2 == 1
	})

	tests := []struct {
		name   string
		toggle Toggle
		want   bool
	}{
		{name: "zero value is enabled", toggle: Toggle{}, want: true},
		{name: "constant true", toggle: Constant(true), want: true},
		{name: "constant false", toggle: Constant(false), want: false},
		{name: "predicate true", toggle: Predicate(func() bool { return 2 > 1 }), want: true},
		{name: "predicate false", toggle: Predicate(func() bool { return 2 < 1 }), want: false},
		{name: "nil predicate is enabled", toggle: Predicate(nil), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.toggle.Enabled())
		})
	}

	// predicate is evaluated on every resolution
	assert.True(t, counting.Enabled())
	assert.False(t, counting.Enabled())
	assert.Equal(t, 2, calls)
}

func TestRewriteDecision_Apply(t *testing.T) {
	assert.True(t, RewriteDecision{}.Unchanged())
	assert.Equal(t, "/login", RewriteDecision{}.Apply("/login"))
	assert.Equal(t, "https://domain.com/login", RewriteDecision{Origin: "https://domain.com"}.Apply("/login"))
}

func TestVerdictConstructors(t *testing.T) {
	assert.Equal(t, VerdictAllow, Allow().Kind)
	assert.Equal(t, Verdict{Kind: VerdictRedirect, Protocol: Secure}, RedirectTo(Secure))
	assert.Equal(t, Verdict{Kind: VerdictReject, Reason: "x"}, Reject("x"))
	assert.Equal(t, "reject", VerdictReject.String())
	assert.Equal(t, "excluded", RequirementExcluded.String())
}
