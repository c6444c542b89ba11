// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Protocol is the transport protocol of a connection or of a generated URL.
type Protocol int

const (
	// Insecure is plain HTTP.
	Insecure Protocol = iota
	// Secure is HTTP over TLS.
	Secure
)

// Scheme returns the URL scheme that corresponds to the protocol.
func (p Protocol) Scheme() string {
	if p == Secure {
		return "https"
	}
	return "http"
}

// Opposite returns the other protocol.
func (p Protocol) Opposite() Protocol {
	if p == Secure {
		return Insecure
	}
	return Secure
}

// String implements fmt.Stringer.
func (p Protocol) String() string {
	if p == Secure {
		return "secure"
	}
	return "insecure"
}

// Origin joins the protocol scheme and host into "scheme://host".
func (p Protocol) Origin(host string) string {
	return p.Scheme() + "://" + host
}
