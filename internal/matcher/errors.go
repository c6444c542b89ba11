// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package matcher

import "errors"

// ErrInvalidPattern is returned by [Compile] and [NewPolicy] when a route
// pattern cannot be compiled. It is a configuration error and is fatal at
// startup.
var ErrInvalidPattern = errors.New("invalid route pattern")
