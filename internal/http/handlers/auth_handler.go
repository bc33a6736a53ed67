package handlers

import (
	"todoapi/internal/config"
	"todoapi/internal/domain"
	"todoapi/internal/log"
	"todoapi/internal/observability"
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth    *services.AuthService
	Config  config.Config
	Metrics *observability.Metrics
}

// POST /auth/register
// The created record is returned without its password hash.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	body, err := parseCredentials(c)
	if err != nil {
		return err
	}
	u, err := h.Auth.Register(body.Email, body.Password)
	if err != nil {
		return err
	}
	log.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return result(c, u)
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	body, err := parseCredentials(c)
	if err != nil {
		return err
	}
	sess, err := h.Auth.Login(body.Email, body.Password)
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindNotFound:
			h.Metrics.AuthFailure("unknown_user")
			log.Security(c, "auth.login.fail", map[string]any{"email": body.Email, "reason": "unknown_user"})
		case domain.KindInvalidCredentials:
			h.Metrics.AuthFailure("bad_password")
			log.Security(c, "auth.login.fail", map[string]any{"email": body.Email, "reason": "bad_password"})
		}
		return err
	}

	// The cookie lives exactly as long as the token it carries.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    sess.Token,
		Path:     "/",
		Domain:   h.Config.CookieDomain,
		Expires:  sess.ExpiresAt,
		HTTPOnly: h.Config.CookieHTTPOnly,
		Secure:   h.Config.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	log.Audit(c, "auth.login.success", map[string]any{"email": body.Email, "user_id": sess.User.ID})
	return c.JSON(fiber.Map{"token": sess.Token})
}

// GET /me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Auth.Me(currentUserID(c))
	if err != nil {
		return err
	}
	return result(c, u)
}
