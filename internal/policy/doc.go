// Package policy reconciles the security requirement of a route with the
// protocol and method of the current connection.
//
// The result is a [models.Verdict]: let the request through, redirect it to
// the other protocol, or reject it. In [Strict] mode unsafe (state-changing)
// requests are never redirected; in [Lenient] mode every mismatch is
// redirected regardless of the method.
package policy
