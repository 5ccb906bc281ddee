// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-notes-keeper/models"

// Source states required by each lifecycle transition. They are passed to
// the store as part of the same statement that performs the change.
const (
	// editing a note in the trash is not allowed
	updateRequires = models.ActiveState

	// trashing an already trashed note succeeds and refreshes deletedAt
	trashRequires = models.AnyState

	restoreRequires = models.TrashedState
)

// purgeRequiresTrashed limits permanent deletion to notes in the trash.
const purgeRequiresTrashed = true
