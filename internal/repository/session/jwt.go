package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domsession "github.com/kailas-cloud/dunerides/internal/domain/session"
)

// Claims are the token claims issued by the auth service.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSource resolves sessions from HS256-signed tokens. It never reports
// loading: a token either verifies or the visitor is anonymous.
type JWTSource struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewJWTSource creates a token-backed session source.
func NewJWTSource(secret, issuer string) (*JWTSource, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTSource{secret: []byte(secret), issuer: issuer, leeway: 30 * time.Second}, nil
}

// Session verifies token and maps its claims to a user.
func (s *JWTSource) Session(_ context.Context, token string) domsession.State {
	if token == "" {
		return domsession.Anonymous()
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.leeway),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return domsession.Anonymous()
	}

	return domsession.Authenticated(domsession.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  domsession.Role(claims.Role),
	})
}
