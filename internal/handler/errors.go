// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither a plain nor
// a TLS listener address is configured. This is a fatal misconfiguration and
// stops the application at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
