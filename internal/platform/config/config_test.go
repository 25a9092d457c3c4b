// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerichotransport/freightdesk/internal/platform/config"
)

/*
TestExtraAllowedOrigins tests EXTRA_ORIGINS parsing into the CORS allow-list.
*/
func TestExtraAllowedOrigins(t *testing.T) {
	t.Run("empty_means_no_extras", func(t *testing.T) {
		cfg := &config.Config{}
		assert.Empty(t, cfg.ExtraAllowedOrigins())
	})

	t.Run("splits_on_commas_and_trims", func(t *testing.T) {
		cfg := &config.Config{ExtraOrigins: " https://staging.example.net, https://qa.example.net ,"}
		assert.Equal(t, []string{"https://staging.example.net", "https://qa.example.net"}, cfg.ExtraAllowedOrigins())
	})
}
