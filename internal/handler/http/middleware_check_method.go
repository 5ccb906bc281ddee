// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. An unsupported method on a known path answers 404 like an unknown
// path does, so route existence is not revealed.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
