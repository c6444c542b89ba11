// Package server wires and runs the application's listeners.
//
// A plain HTTP and a TLS listener may run side by side over the same router,
// so the per-route connection policy can move clients between them. TLS
// material comes from certificate files or from ACME via autocert, in which
// case the plain listener also answers the http-01 challenges. The package
// handles startup, signal handling, and graceful shutdown of both.
package server
