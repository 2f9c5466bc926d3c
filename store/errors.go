/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import "errors"

var (
	ErrNotFound                 = errors.New("key not found")
	ErrDatabaseURLNotSet        = errors.New("DATABASE_URL is not set")
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in DATABASE_URL")
	ErrRedisURLNotSet           = errors.New("REDIS_URL is not set")
	ErrUnknownBackend           = errors.New("unknown store backend")
)
