// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id int) (*User, error)

	/*
		FindByEmail returns the account with the given email (lowercased).

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account and assigns its ID.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Constraint violations or connectivity errors
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword replaces the stored password hash for the account.

		Parameters:
		  - context: context.Context
		  - id: int
		  - passwordHash: string

		Returns:
		  - error: Database write failures
	*/
	UpdatePassword(context context.Context, id int, passwordHash string) error
}
