// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package auth

// # Authentication Constraints

const (
	// MinPasswordLength is the minimum accepted password length. Accounts are
	// enrolled by a manager, so the policy is deliberately modest.
	MinPasswordLength = 6

	// InvalidCredentialsMessage is the single external message for every login
	// failure. Lookup misses and password mismatches must be indistinguishable
	// to prevent account enumeration.
	InvalidCredentialsMessage = "Invalid login credentials"
)
