package handlers

import (
	"strings"

	"todoapi/internal/domain"
	applog "todoapi/internal/log"
	"todoapi/internal/observability"
	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

const TokenCookie = "token"

type tokenSource func(c *fiber.Ctx) string

// tokenSources are tried in order; the first non-empty value wins.
var tokenSources = []tokenSource{fromAuthorizationHeader, fromCookie}

// fromAuthorizationHeader accepts the raw token or "Bearer <token>".
func fromAuthorizationHeader(c *fiber.Ctx) string {
	v := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
		v = strings.TrimSpace(v[7:])
	}
	return v
}

func fromCookie(c *fiber.Ctx) string {
	return c.Cookies(TokenCookie)
}

func presentedToken(c *fiber.Ctx) (string, bool) {
	for _, src := range tokenSources {
		if tok := src(c); tok != "" {
			return tok, true
		}
	}
	return "", false
}

// Authenticate rejects requests without a valid token and binds the token's
// user id to the request for the handlers that follow.
func Authenticate(auth *services.AuthService, m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := presentedToken(c)
		if !ok {
			m.AuthFailure("missing")
			applog.Security(c, "auth.token.missing", nil)
			return domain.Unauthenticated()
		}
		id, err := auth.Authenticate(tok)
		if err != nil {
			m.AuthFailure("invalid")
			applog.Security(c, "auth.token.invalid", nil)
			return err
		}
		c.Locals(LocalUserID, id)
		return c.Next()
	}
}
