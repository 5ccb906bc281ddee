// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBcryptCost indicates a bcrypt cost outside of 4..31.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost")
)
