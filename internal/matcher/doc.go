// Package matcher decides which routes require a secure connection.
//
// Routes are fully-qualified action identifiers such as "auth/login" or
// "payment/cart/index". Patterns use shell-style wildcards where "*" matches
// any sequence of characters, including "/", and always match the whole
// route. A [Policy] combines the required-secure and excluded-from-secure
// lists; exclusion always wins.
//
// The same [Policy] is shared by the admission check and by both URL
// rewriting strategies, so every component agrees on what a route needs.
package matcher
