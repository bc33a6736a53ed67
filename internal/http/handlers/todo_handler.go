package handlers

import (
	"todoapi/internal/domain"
	applog "todoapi/internal/log"
	"todoapi/internal/services"
	"todoapi/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TodoHandler struct {
	Todos *services.TodoService
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	todos, err := h.Todos.List()
	if err != nil {
		return err
	}
	return result(c, todos)
}

func (h *TodoHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return domain.NotFound("Todo not found")
	}
	t, err := h.Todos.Get(id)
	if err != nil {
		return err
	}
	return result(c, t)
}

// Create always records the caller as author.
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	body, err := parseTodo(c)
	if err != nil {
		return err
	}
	t, err := h.Todos.Create(currentUserID(c), services.TodoInput{
		Title:       body.Title,
		Description: body.Description,
		Done:        body.Done,
	})
	if err != nil {
		return err
	}
	applog.Audit(c, "todos.create", map[string]any{"todo_id": t.ID})
	return result(c, t)
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	body, err := parseTodo(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if _, err := h.Todos.Update(id, services.TodoInput{
		Title:       body.Title,
		Description: body.Description,
		Done:        body.Done,
	}); err != nil {
		return err
	}
	applog.Audit(c, "todos.update", map[string]any{"todo_id": id})
	return message(c, "Todo updated")
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Todos.Delete(id); err != nil {
		return err
	}
	applog.Audit(c, "todos.delete", map[string]any{"todo_id": id})
	return message(c, "Todo deleted")
}
