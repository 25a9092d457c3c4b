// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jerichotransport/freightdesk/internal/platform/apperr"
	"github.com/jerichotransport/freightdesk/internal/platform/constants"
	"github.com/jerichotransport/freightdesk/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The login email of the account.
	//   - name: The display name of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID int, email, name string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed before merging.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new office account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     sec.UserRole
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Manager-driven enrollment of an office member. Emails are stored
lowercased so uniqueness is case-insensitive.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if the email is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	role := input.Role
	if role == "" {
		role = sec.RoleOperator
	}
	if !role.IsValid() {
		return nil, apperr.ValidationError("Unknown role: " + string(input.Role))
	}

	// Verify email uniqueness. Return a client-safe Conflict err. The unique
	// index on users.email backstops this check against concurrent registers.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully authenticated user.
type LoginSession struct {
	AccessToken string
	User        *User
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity, performs constant-time password comparison,
and signs an 8-hour JWT. Lookup misses and password mismatches collapse into
one generic Unauthorized error.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token and profile
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.Unauthorized(InvalidCredentialsMessage)
	}

	// bcrypt's compare primitive is constant-time.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(InvalidCredentialsMessage)
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Email, user.Name, user.Role, constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	return &LoginSession{AccessToken: accessToken, User: user}, nil
}

// # Account Flow

/*
Me returns the current account for the authenticated subject.

Parameters:
  - context: context.Context
  - userID: int (taken from verified token claims)

Returns:
  - *User: Hydrated profile
  - err: NotFound when the account row no longer exists
*/
func (service *Service) Me(context context.Context, userID int) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}

/*
ChangePassword rotates the password for the authenticated account.

Description: Requires the current password. A wrong current password is an
Unauthorized error, not a validation error, because it proves nothing about
the caller's identity.

Parameters:
  - context: context.Context
  - userID: int
  - currentPassword: string
  - newPassword: string

Returns:
  - err: Unauthorized, NotFound, or storage errors
*/
func (service *Service) ChangePassword(context context.Context, userID int, currentPassword, newPassword string) error {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	return service.userRepository.UpdatePassword(context, userID, hashedPassword)
}
