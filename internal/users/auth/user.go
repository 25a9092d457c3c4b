// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

/*
Package auth implements the user identity layer of Freightdesk.

It defines the core User entity and the logic for authentication, account
creation, and password management. Freightdesk is a single-tenant system for
one office of dispatchers, so there is no self-service signup: managers enroll
every account.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/jerichotransport/freightdesk/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Jericho Transport office.
type User struct {
	ID           int          `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Name         string       `json:"name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldRole            = "role"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldToken           = "token"
	FieldUser            = "user"
	FieldMessage         = "message"
)
