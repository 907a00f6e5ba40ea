package middleware

import (
	"context"
	"strings"
	"time"

	"resume-builder/internal/sessions"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionLookup resolves a session cookie token to a stored session.
type SessionLookup interface {
	Get(ctx context.Context, token string) (*sessions.Session, error)
}

// SessionCookie is the cookie carrying the server session token.
const SessionCookie = "resume_session"

type identityClaims struct {
	Email    string            `json:"email,omitempty"`
	Name     string            `json:"name,omitempty"`
	Metadata map[string]string `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate resolves the current identity from either a Bearer token
// issued by the identity provider or a server session cookie. Requests
// without credentials pass through anonymous; RequireAuth and RequireView
// decide what happens to them.
func Authenticate(secret string, store SessionLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			if secret == "" {
				return fiber.NewError(fiber.StatusUnauthorized, "missing JWT_SECRET")
			}

			tokenStr := strings.TrimSpace(auth[7:])
			var claims identityClaims
			token, err := jwt.ParseWithClaims(
				tokenStr,
				&claims,
				func(t *jwt.Token) (any, error) {
					if t.Method != jwt.SigningMethodHS256 {
						return nil, fiber.ErrUnauthorized
					}
					return []byte(secret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}

			uid, err := uuid.Parse(claims.Subject)
			if err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
			}
			c.Locals("identity", usecase.Identity{
				ID:          uid,
				DisplayName: claims.Name,
				Email:       claims.Email,
				Metadata:    claims.Metadata,
			})
			return c.Next()
		}

		if store != nil {
			if cookie := c.Cookies(SessionCookie); cookie != "" {
				ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
				defer cancel()
				s, err := store.Get(ctx, cookie)
				if err == nil && s != nil {
					if uid, perr := uuid.Parse(s.UserID); perr == nil {
						c.Locals("identity", usecase.Identity{
							ID:          uid,
							DisplayName: s.DisplayName,
							Email:       s.Email,
							Metadata:    s.Metadata,
						})
					}
				}
			}
		}
		return c.Next()
	}
}
