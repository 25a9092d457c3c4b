// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerichotransport/freightdesk/internal/platform/middleware"
	"github.com/jerichotransport/freightdesk/internal/platform/sec"
)

// stubVerifier resolves fixed token strings to claims without real signing.
type stubVerifier struct {
	claims map[string]*sec.AuthClaims
}

func (verifier *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if claims, ok := verifier.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func newGuardedServer(operation sec.Operation) http.Handler {
	verifier := &stubVerifier{claims: map[string]*sec.AuthClaims{
		"manager-token":    {UserID: 1, Role: sec.RoleManager},
		"operator-token":   {UserID: 2, Role: sec.RoleOperator},
		"accountant-token": {UserID: 3, Role: sec.RoleAccountant},
	}}

	okHandler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	return middleware.Authenticate(verifier)(
		middleware.RequirePermission(operation)(okHandler),
	)
}

/*
TestRequirePermission_RoleGating exercises the role × operation gate over HTTP.
*/
func TestRequirePermission_RoleGating(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		operation  sec.Operation
		wantStatus int
	}{
		{"manager_creates", "manager-token", sec.OpShipmentCreate, http.StatusOK},
		{"operator_creates", "operator-token", sec.OpShipmentCreate, http.StatusOK},
		{"operator_deletes", "operator-token", sec.OpShipmentDelete, http.StatusOK},
		{"accountant_views", "accountant-token", sec.OpShipmentView, http.StatusOK},
		{"accountant_exports", "accountant-token", sec.OpExport, http.StatusOK},

		// Forbidden is distinct from unauthenticated
		{"accountant_create_forbidden", "accountant-token", sec.OpShipmentCreate, http.StatusForbidden},
		{"accountant_update_forbidden", "accountant-token", sec.OpShipmentUpdate, http.StatusForbidden},
		{"accountant_delete_forbidden", "accountant-token", sec.OpShipmentDelete, http.StatusForbidden},
		{"operator_register_forbidden", "operator-token", sec.OpUserRegister, http.StatusForbidden},

		// Unauthenticated requests are rejected before role checks run
		{"missing_token_unauthorized", "", sec.OpShipmentView, http.StatusUnauthorized},
		{"garbage_token_unauthorized", "not-a-real-token", sec.OpShipmentView, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newGuardedServer(tt.operation)

			request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestAuthenticate_MalformedHeader rejects non-Bearer authorization schemes.
*/
func TestAuthenticate_MalformedHeader(t *testing.T) {
	server := newGuardedServer(sec.OpShipmentView)

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
