// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerichotransport/freightdesk/internal/platform/ctxutil"
	"github.com/jerichotransport/freightdesk/internal/platform/respond"
	"github.com/jerichotransport/freightdesk/internal/platform/sec"
	"github.com/jerichotransport/freightdesk/internal/users/auth"
)

func newTestHandler(t *testing.T) (*auth.Handler, *auth.Service) {
	t.Helper()
	service, _ := newTestService(t)
	return auth.NewHandler(service), service
}

// authenticatedRequest builds a request carrying the given user's claims, the
// way the authentication middleware would after verifying a bearer token.
func authenticatedRequest(t *testing.T, method, target, body string, user *auth.User) *http.Request {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	claims := &sec.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

/*
TestHandler_ChangePassword tests the change-password endpoint against the
request shape the dashboard actually sends. The dashboard posts camelCase
keys on this endpoint, so the handler must accept exactly that shape.
*/
func TestHandler_ChangePassword(t *testing.T) {
	t.Run("accepts_camel_case_body", func(t *testing.T) {
		handler, service := newTestHandler(t)
		user := registerUser(t, service, "dash@jericho.com", "old-secret", sec.RoleOperator)

		body := `{"currentPassword":"old-secret","newPassword":"new-secret"}`
		request := authenticatedRequest(t, http.MethodPost, "/change-password", body, user)
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		_, err := service.Login(request.Context(), auth.LoginInput{
			Email:    "dash@jericho.com",
			Password: "new-secret",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects_missing_fields_naming_camel_case_keys", func(t *testing.T) {
		handler, service := newTestHandler(t)
		user := registerUser(t, service, "dash@jericho.com", "old-secret", sec.RoleOperator)

		// Snake_case keys are the wrong shape for this endpoint and must be
		// rejected as if the fields were absent.
		body := `{"current_password":"old-secret","new_password":"new-secret"}`
		request := authenticatedRequest(t, http.MethodPost, "/change-password", body, user)
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		fields := make([]string, 0, len(envelope.Details))
		for _, detail := range envelope.Details {
			fields = append(fields, detail.Field)
		}
		assert.Contains(t, fields, auth.FieldCurrentPassword)
		assert.Contains(t, fields, auth.FieldNewPassword)
	})

	t.Run("rejects_short_new_password", func(t *testing.T) {
		handler, service := newTestHandler(t)
		user := registerUser(t, service, "dash@jericho.com", "old-secret", sec.RoleOperator)

		body := `{"currentPassword":"old-secret","newPassword":"short"}`
		request := authenticatedRequest(t, http.MethodPost, "/change-password", body, user)
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("requires_authentication", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		body := `{"currentPassword":"old-secret","newPassword":"new-secret"}`
		request := httptest.NewRequest(http.MethodPost, "/change-password", strings.NewReader(body))
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
