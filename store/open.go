/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config selects and configures a KV backend.
type Config struct {
	Backend     string
	DatabaseURL string
	RedisURL    string
	// Migrate runs pending migrations when opening Postgres.
	Migrate bool
}

// Open returns the configured backend and a function releasing it.
func Open(ctx context.Context, config Config) (KV, func(), error) {
	switch strings.ToLower(config.Backend) {
	case "", BackendMemory:
		return NewMemory(), func() {}, nil

	case BackendPostgres:
		pg, err := NewPostgres(ctx, config.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		if config.Migrate {
			if err := SyncSchema(ctx, config.DatabaseURL); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}

		return pg, pg.Close, nil

	case BackendRedis:
		r, err := NewRedis(ctx, config.RedisURL)
		if err != nil {
			return nil, nil, err
		}

		return r, func() {
			if err := r.Close(); err != nil {
				logger.Warn("Failed to close redis client", "error", err)
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownBackend, config.Backend)
}
