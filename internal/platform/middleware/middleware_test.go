// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerichotransport/freightdesk/internal/platform/middleware"
)

// stubAppConfig drives the CORS middleware without real environment parsing.
type stubAppConfig struct {
	development  bool
	extraOrigins []string
}

func (cfg stubAppConfig) IsDevelopment() bool { return cfg.development }

func (cfg stubAppConfig) ExtraAllowedOrigins() []string { return cfg.extraOrigins }

/*
TestCORS_OriginGating exercises the production origin allow-list: the company
domain always passes, configured extra origins pass by exact match, and
everything else is denied the CORS headers.
*/
func TestCORS_OriginGating(t *testing.T) {
	tests := []struct {
		name      string
		cfg       stubAppConfig
		origin    string
		wantAllow string
	}{
		{
			name:      "development_allows_any_origin",
			cfg:       stubAppConfig{development: true},
			origin:    "http://localhost:3000",
			wantAllow: "http://localhost:3000",
		},
		{
			name:      "production_allows_company_domain",
			cfg:       stubAppConfig{},
			origin:    "https://dispatch.jerichotransport.com",
			wantAllow: "https://dispatch.jerichotransport.com",
		},
		{
			name:      "production_allows_configured_extra_origin",
			cfg:       stubAppConfig{extraOrigins: []string{"https://staging.example.net"}},
			origin:    "https://staging.example.net",
			wantAllow: "https://staging.example.net",
		},
		{
			name:      "production_denies_unknown_origin",
			cfg:       stubAppConfig{extraOrigins: []string{"https://staging.example.net"}},
			origin:    "https://evil.example.org",
			wantAllow: "",
		},
		{
			name:      "extra_origins_match_exactly_not_by_suffix",
			cfg:       stubAppConfig{extraOrigins: []string{"https://staging.example.net"}},
			origin:    "https://notreally-staging.example.net.attacker.io",
			wantAllow: "",
		},
	}

	okHandler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := middleware.CORS(tt.cfg)(okHandler)

			request := httptest.NewRequest(http.MethodGet, "/api/shipments", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantAllow, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

/*
TestCORS_Preflight short-circuits OPTIONS requests with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	server := middleware.CORS(stubAppConfig{development: true})(http.HandlerFunc(
		func(writer http.ResponseWriter, request *http.Request) {
			t.Fatal("preflight must not reach the next handler")
		},
	))

	request := httptest.NewRequest(http.MethodOptions, "/api/shipments", nil)
	request.Header.Set("Origin", "http://localhost:3000")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
