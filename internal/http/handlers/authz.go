package handlers

import (
	"todoapi/internal/domain"
	applog "todoapi/internal/log"
	"todoapi/internal/observability"
	"todoapi/internal/services"
	"todoapi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// RequireTodoOwnerOrAdmin guards mutations of /todos/:id. It must run after Authenticate.
func RequireTodoOwnerOrAdmin(az *services.Authorizer, m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validate.ID(c.Params("id"))
		if !ok {
			return domain.NotFound("Todo not found")
		}
		return decide(c, m, services.PolicyOwnerOrAdmin, az.AuthorizeTodo(currentUserID(c), id))
	}
}

// RequireSelfOrAdmin guards mutations of /users/:id. It must run after Authenticate.
func RequireSelfOrAdmin(az *services.Authorizer, m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validate.ID(c.Params("id"))
		if !ok {
			return domain.NotFound("User not found")
		}
		return decide(c, m, services.PolicySelfOrAdmin, az.AuthorizeUser(currentUserID(c), id))
	}
}

func decide(c *fiber.Ctx, m *observability.Metrics, policy string, err error) error {
	if err == nil {
		m.AuthzDecision(policy, true)
		return c.Next()
	}
	if domain.KindOf(err) == domain.KindForbidden {
		m.AuthzDecision(policy, false)
		applog.Security(c, "authz.denied", map[string]any{"policy": policy, "target": c.Params("id")})
	}
	return err
}
