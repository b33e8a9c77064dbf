// Package session gives every browser an anonymous, signed session id so that
// per-screen view state can be kept in memory between requests. It is not an
// authentication mechanism: the id carries no identity and no privileges.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the cookie the signed session token travels in.
	CookieName = "track247_session"
	// ContextKey is where the middleware stores the session id.
	ContextKey = "session_id"

	issuer = "track247"
)

var ErrInvalidToken = errors.New("invalid session token")

// Manager issues and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager creates a manager. secure marks the cookie Secure, which should
// be set whenever the server is reached over TLS.
func NewManager(secret []byte, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret: secret,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Issue signs a token for id. An empty id allocates a new one.
func (m *Manager) Issue(id string) (string, string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign session token: %w", err)
	}
	return id, signed, nil
}

// Parse verifies a token and returns the session id and its expiry.
func (m *Manager) Parse(token string) (string, time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: malformed id", ErrInvalidToken)
	}
	return claims.ID, claims.ExpiresAt.Time, nil
}

// Middleware resolves the session for every request. A missing, tampered or
// expired cookie silently starts a new session; a cookie past half its
// lifetime is re-signed with the same id.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			var expires time.Time
			if ck, err := c.Cookie(CookieName); err == nil {
				id, expires, _ = m.Parse(ck.Value)
			}

			if id == "" || expires.Sub(m.now()) < m.ttl/2 {
				newID, token, err := m.Issue(id)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
				}
				id = newID
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(m.ttl.Seconds()),
					HttpOnly: true,
					Secure:   m.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextKey, id)
			return next(c)
		}
	}
}

// ID returns the session id placed on the context by the middleware, or an
// empty string outside a session.
func ID(c echo.Context) string {
	id, _ := c.Get(ContextKey).(string)
	return id
}
