package chi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/kailas-cloud/dunerides/internal/domain/session"
	"github.com/kailas-cloud/dunerides/internal/usecase/guard"
)

type userCtxKey struct{}

// exemptPaths are routes that are never guarded, even if mounted under a guard.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// GuardMiddleware gates a route group on the session reported for the request.
// Resolving -> 503 with Retry-After, Unauthorized -> 302 to the guard's
// fallback path with ?next=, Authorized -> next with the user in context.
func GuardMiddleware(g *guard.Guard, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			d := g.Evaluate(r.Context(), extractToken(r, cookieName))

			switch d.State {
			case guard.Resolving:
				w.Header().Set("Retry-After", "1")
				w.Header().Set("Cache-Control", "no-store")
				writeJSON(w, http.StatusServiceUnavailable, GuardPending{State: d.State.String()})
			case guard.Unauthorized:
				http.Redirect(w, r, redirectTarget(d.RedirectTo, r.URL.RequestURI()), http.StatusFound)
			default:
				ctx := context.WithValue(r.Context(), userCtxKey{}, d.User)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

// UserFromContext returns the user placed in context by GuardMiddleware.
func UserFromContext(ctx context.Context) (*session.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(*session.User)
	return u, ok && u != nil
}

// extractToken prefers a Bearer header and falls back to the session cookie.
func extractToken(r *http.Request, cookieName string) string {
	const bearerPrefix = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, bearerPrefix) {
		return strings.TrimSpace(auth[len(bearerPrefix):])
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// redirectTarget appends next=<original> so the login page can send the user back.
func redirectTarget(fallback, original string) string {
	u, err := url.Parse(fallback)
	if err != nil {
		return fallback
	}
	q := u.Query()
	q.Set("next", original)
	u.RawQuery = q.Encode()
	return u.String()
}
