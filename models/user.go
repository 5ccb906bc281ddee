// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// It is created once at registration and never modified afterwards.
type User struct {
	// UserID is the opaque identifier assigned by the store at creation.
	UserID string `json:"-"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the contact address supplied during registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password.
	// The plaintext password is never persisted nor serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public view of a [User] returned by GET /api/user.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
