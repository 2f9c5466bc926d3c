// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"
)

func testKey(prefix string) (string, string) {
	return prefix, fmt.Sprintf("report-%d", time.Now().UnixNano())
}

func TestPostgresRoundTrip(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()

	kv, closeFn, err := Open(ctx, Config{Backend: BackendPostgres, DatabaseURL: databaseURL, Migrate: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer closeFn()

	pg := kv.(*Postgres)
	patientID, reportID := testKey("pg-patient")

	if _, err := pg.Get(ctx, Key(patientID, reportID)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s := New(pg)
	summary := sampleSummary()
	s.Save(ctx, patientID, reportID, summary)
	s.Save(ctx, patientID, reportID, summary)

	loaded, ok := s.Load(ctx, patientID, reportID)
	if !ok || !reflect.DeepEqual(loaded, summary) {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestRedisRoundTrip(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()

	kv, closeFn, err := Open(ctx, Config{Backend: BackendRedis, RedisURL: redisURL})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer closeFn()

	patientID, reportID := testKey("redis-patient")
	t.Cleanup(func() {
		_ = kv.(*Redis).client.Del(context.Background(), Key(patientID, reportID)).Err()
	})

	if _, err := kv.Get(ctx, Key(patientID, reportID)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s := New(kv)
	summary := sampleSummary()
	s.Save(ctx, patientID, reportID, summary)

	loaded, ok := s.Load(ctx, patientID, reportID)
	if !ok || !reflect.DeepEqual(loaded, summary) {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
