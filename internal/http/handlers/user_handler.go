package handlers

import (
	"todoapi/internal/domain"
	applog "todoapi/internal/log"
	"todoapi/internal/services"
	"todoapi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *services.UserService
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return err
	}
	return result(c, users)
}

// GET /users/:id answers 200 with a message when the user does not exist.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return message(c, "User not found")
	}
	u, err := h.Users.Get(id)
	if domain.KindOf(err) == domain.KindNotFound {
		return message(c, "User not found")
	}
	if err != nil {
		return err
	}
	return result(c, u)
}

// PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	body, err := parseCredentials(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if _, err := h.Users.Update(id, services.UserPatch{Email: body.Email, Password: body.Password}); err != nil {
		return err
	}
	applog.Audit(c, "users.update", map[string]any{"target": id, "email_changed": body.Email != "", "password_changed": body.Password != ""})
	return message(c, "User updated")
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Users.Delete(id); err != nil {
		return err
	}
	applog.Audit(c, "users.delete", map[string]any{"target": id})
	return message(c, "User deleted")
}
