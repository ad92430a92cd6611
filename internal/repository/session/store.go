// Package session reads the externally owned session state. Nothing here
// writes sessions; the auth service owns their lifecycle.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dunerides/internal/db"
	domsession "github.com/kailas-cloud/dunerides/internal/domain/session"
)

// DefaultKeyPrefix namespaces session keys in the store.
const DefaultKeyPrefix = "session:"

const defaultLookupTimeout = 250 * time.Millisecond

// store is the consumer interface for session lookups (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// StoreSource resolves sessions from JSON records kept in Valkey/Redis
// under <prefix><token>. Until MarkReady is called every lookup reports
// a loading state, so guards hold off instead of redirecting.
type StoreSource struct {
	store   store
	prefix  string
	timeout time.Duration
	ready   atomic.Bool
	logger  *zap.Logger
}

// NewStoreSource creates a store-backed session source.
func NewStoreSource(s store, prefix string, logger *zap.Logger) *StoreSource {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreSource{store: s, prefix: prefix, timeout: defaultLookupTimeout, logger: logger}
}

// WithLookupTimeout bounds each store lookup. A lookup that times out
// reports loading rather than anonymous.
func (s *StoreSource) WithLookupTimeout(d time.Duration) *StoreSource {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// MarkReady signals that the store answered its readiness probe.
func (s *StoreSource) MarkReady() { s.ready.Store(true) }

// Ready reports whether MarkReady has been called.
func (s *StoreSource) Ready() bool { return s.ready.Load() }

// Session looks up the session for token.
func (s *StoreSource) Session(ctx context.Context, token string) domsession.State {
	if !s.Ready() {
		return domsession.Resolving()
	}
	if token == "" {
		return domsession.Anonymous()
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.store.Get(lookupCtx, s.prefix+token)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domsession.Anonymous()
		}
		s.logger.Warn("session lookup failed", zap.Error(err))
		return domsession.Resolving()
	}

	var u domsession.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.Warn("corrupt session record", zap.Error(err))
		return domsession.Anonymous()
	}
	if u.ID == "" {
		return domsession.Anonymous()
	}
	return domsession.Authenticated(u)
}
