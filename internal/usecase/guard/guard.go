// Package guard decides whether a request may see guarded content.
package guard

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dunerides/internal/domain/session"
	logpkg "github.com/kailas-cloud/dunerides/internal/logger"
	"github.com/kailas-cloud/dunerides/internal/metrics"
)

// DefaultFallback is where unauthorized visitors are sent.
const DefaultFallback = "/login"

// State is the outcome of a guard evaluation.
type State int

// Guard states.
const (
	// Resolving means the session is not known yet; show a loading indicator.
	Resolving State = iota
	// Unauthorized means no user or insufficient role; redirect.
	Unauthorized
	// Authorized means the guarded content may be rendered.
	Authorized
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Unauthorized:
		return "unauthorized"
	case Authorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Requirement is what the guarded content demands of the user.
type Requirement string

// Requirements.
const (
	RequireUser  Requirement = "user"
	RequireAdmin Requirement = "admin"
)

// Decision is the guard verdict for one request.
type Decision struct {
	State      State
	RedirectTo string        // set when State == Unauthorized
	User       *session.User // set when State == Authorized
}

// Decide applies the guard rules to a session snapshot.
// Loading always yields Resolving, whatever the user value.
func Decide(s session.State, req Requirement, fallback string) Decision {
	if s.Loading {
		return Decision{State: Resolving}
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	if s.User == nil {
		return Decision{State: Unauthorized, RedirectTo: fallback}
	}
	if req == RequireAdmin && !s.User.Role.Satisfies(session.RoleAdmin) {
		return Decision{State: Unauthorized, RedirectTo: fallback}
	}
	return Decision{State: Authorized, User: s.User}
}

// Guard binds a session source to a requirement and a fallback path.
type Guard struct {
	source      SessionSource
	requirement Requirement
	fallback    string
}

// New creates a guard. An empty fallback means DefaultFallback.
func New(source SessionSource, req Requirement, fallback string) *Guard {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Guard{source: source, requirement: req, fallback: fallback}
}

// Requirement returns the guard requirement.
func (g *Guard) Requirement() Requirement { return g.requirement }

// Fallback returns the redirect target.
func (g *Guard) Fallback() string { return g.fallback }

// Evaluate reads the session once and returns the decision.
func (g *Guard) Evaluate(ctx context.Context, token string) Decision {
	d := Decide(g.source.Session(ctx, token), g.requirement, g.fallback)

	metrics.GuardDecisionsTotal.WithLabelValues(string(g.requirement), d.State.String()).Inc()

	fields := []zap.Field{
		zap.String("requirement", string(g.requirement)),
		zap.Stringer("state", d.State),
	}
	if d.User != nil {
		fields = append(fields, zap.String("user_id", d.User.ID))
	}
	logpkg.FromContext(ctx).Debug("guard decision", fields...)

	return d
}
