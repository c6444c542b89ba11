// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page handlers, and middleware. Every request is
// traced and logged, its connection state (protocol, method class, host) is
// observed once, and the secure connection filter then redirects, rejects or
// admits it according to the route it resolved to. Pages render links
// generated for the same connection, so each link already carries the
// scheme its target route needs.
package http
