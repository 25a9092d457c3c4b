// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerichotransport/freightdesk/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a generated token carries the
identity claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "freightdesk.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(7, "ops@jerichotransport.com", "Warehouse Ops", sec.RoleOperator, 8*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ops@jerichotransport.com", claims.Email)
	assert.Equal(t, "Warehouse Ops", claims.Name)
	assert.Equal(t, sec.RoleOperator, claims.Role)
	assert.Equal(t, "7", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

/*
TestTokenService_Expired checks that expiry is absolute, not sliding.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "freightdesk.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(1, "a@b.c", "A", sec.RoleManager, -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret ensures signature verification is enforced.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-a", "freightdesk.test")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "freightdesk.test")
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken(1, "a@b.c", "A", sec.RoleManager, time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_InvalidToken(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "freightdesk.test")
	require.NoError(t, err)

	_, err = service.VerifyToken("invalid.token.string")
	assert.Error(t, err)
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "freightdesk.test")
	assert.Error(t, err)
}
