package http

import (
	"log/slog"
	"time"

	"resume-builder/internal/middleware"
	"resume-builder/internal/sessions"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateSession exchanges a verified identity-provider token for a server
// session cookie. The local user row is created on first sight so the CRUD
// tables always have a parent to reference.
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if _, err := h.users.Ensure(c.Context(), id.ID, id.Email); err != nil {
		slog.Error("user ensure failed", "user", id.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	s := &sessions.Session{
		Token:       uuid.NewString(),
		UserID:      id.ID.String(),
		Email:       id.Email,
		DisplayName: id.DisplayName,
		Metadata:    id.Metadata,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   time.Now().UTC().Add(h.sessionTTL),
	}
	if err := h.sessions.Create(c.Context(), s); err != nil {
		slog.Error("session create failed", "user", id.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Expires:  s.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"expiresAt": s.ExpiresAt})
}

// LoginView is the target of the route gate's redirect. The hosted identity
// provider handles the actual flow; this page only keeps the redirectTo
// parameter alive for the post-login return.
func (h *Handler) LoginView(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!DOCTYPE html><html><body><h1>Sign in</h1><p>Sign in with your identity provider to continue.</p></body></html>`)
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if err := h.sessions.Delete(c.Context(), token); err != nil {
			slog.Warn("session delete failed", "error", err)
		}
	}
	c.ClearCookie(middleware.SessionCookie)
	return c.SendStatus(fiber.StatusNoContent)
}
