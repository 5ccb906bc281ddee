// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// Errors returned by NewServer when the notes API cannot be served.
var (
	errNoHTTPHandler   = errors.New("no HTTP handler to serve the notes API")
	errNoListenAddress = errors.New("HTTP listen address is empty")
)
