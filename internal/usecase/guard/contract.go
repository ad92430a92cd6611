package guard

import (
	"context"

	"github.com/kailas-cloud/dunerides/internal/domain/session"
)

// SessionSource reports the externally owned session for a token.
// Implementations only read; an empty token means no credentials were sent.
type SessionSource interface {
	Session(ctx context.Context, token string) session.State
}
