package session

import (
	"context"

	domsession "github.com/kailas-cloud/dunerides/internal/domain/session"
)

// StaticSource reports the same state for every request. Used when no
// session backend is configured and for local development.
type StaticSource struct {
	state domsession.State
}

// NewStaticSource creates a fixed session source.
func NewStaticSource(state domsession.State) *StaticSource {
	return &StaticSource{state: state}
}

// Session returns the fixed state, ignoring the token.
func (s *StaticSource) Session(context.Context, string) domsession.State {
	return s.state
}
