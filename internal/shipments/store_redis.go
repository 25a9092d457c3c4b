// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jerichotransport/freightdesk/internal/platform/constants"
)

// SuggestionCacheTTL bounds how stale an autocomplete result may be. Sixty
// seconds keeps dispatchers' typing snappy without showing hour-old values.
const SuggestionCacheTTL = 60 * time.Second

// RedisSuggestionCache implements SuggestionCache using Redis.
//
// Every failure path degrades silently: autocomplete must keep working off
// the database when Redis is down.
type RedisSuggestionCache struct {
	client *redis.Client
}

// NewSuggestionCache creates a new Redis-backed SuggestionCache.
func NewSuggestionCache(client *redis.Client) *RedisSuggestionCache {
	return &RedisSuggestionCache{client: client}
}

// cacheKey builds the Redis key for one (field, query) lookup.
func cacheKey(field, query string) string {
	return fmt.Sprintf("%s%s:%s", constants.RedisPrefixSuggest, field, query)
}

/*
Get returns the cached suggestion values for (field, query).

Parameters:
  - context: context.Context
  - field: string
  - query: string

Returns:
  - []string: Cached values
  - bool: false on a miss, decode failure, or any Redis error
*/
func (cache *RedisSuggestionCache) Get(context context.Context, field string, query string) ([]string, bool) {
	payload, err := cache.client.Get(context, cacheKey(field, query)).Result()
	if err != nil {
		return nil, false
	}

	var values []string
	if err := json.Unmarshal([]byte(payload), &values); err != nil {
		return nil, false
	}

	return values, true
}

/*
Set stores the suggestion values for (field, query) with the cache TTL.

Parameters:
  - context: context.Context
  - field: string
  - query: string
  - values: []string
*/
func (cache *RedisSuggestionCache) Set(context context.Context, field string, query string, values []string) {
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}

	_ = cache.client.Set(context, cacheKey(field, query), payload, SuggestionCacheTTL).Err()
}
