package db

import (
	"context"
	"time"
)

// Store is the database facade used by the site: connectivity plus
// read-only key lookups. Session data is written by the external auth service.
type Store interface {
	Pinger
	KVReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVReader provides simple key lookups.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}
