// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidLoginForm is returned when the sign in form cannot be parsed.
	MsgInvalidLoginForm = "invalid login form"

	// MsgLinkGenerationFailed is returned when a page cannot build the links
	// it carries.
	MsgLinkGenerationFailed = "error generating page links"

	// MsgNotFound is returned for unknown routes and for methods a route
	// does not accept.
	MsgNotFound = "not found"
)
