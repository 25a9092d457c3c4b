// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

// Package redis provides a managed Redis client for the Freightdesk
// application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. Redis is used as a
// short-lived cache for shipment field suggestions; cache failures degrade
// silently and never break a request.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// dialTimeout is the maximum time to establish a connection.
	dialTimeout = 5 * time.Second
	// readTimeout is the per-command read deadline.
	readTimeout = 2 * time.Second
	// writeTimeout is the per-command write deadline.
	writeTimeout = 2 * time.Second
	// poolSize limits the number of concurrent connections to Redis.
	poolSize = 10
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// NewClient creates and validates a new Redis client.
//
// # Parameters
//   - ctx: Context for the initial connection check.
//   - url: A redis:// connection URL.
//   - logger: Structured logger for client-level events.
func NewClient(ctx context.Context, url string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout
	options.PoolSize = poolSize

	client := redis.NewClient(options)

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis connected", slog.String("addr", options.Addr), slog.Int("db", options.DB))

	return client, nil
}

// Ping verifies that the Redis connection is healthy.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
