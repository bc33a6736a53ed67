package handlers

import (
	"encoding/json"

	"todoapi/internal/domain"

	"github.com/gofiber/fiber/v2"
)

type credentialsBody struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type todoBody struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Done        json.RawMessage `json:"done"`
}

var errBadBody = domain.Validation("Invalid request body")

func parseCredentials(c *fiber.Ctx) (credentialsBody, error) {
	var b credentialsBody
	if len(c.Body()) == 0 {
		return b, nil
	}
	if err := c.BodyParser(&b); err != nil {
		return b, errBadBody
	}
	return b, nil
}

// parseTodo reads a JSON or form body. Form values for done arrive as
// strings and are kept as JSON strings so they coerce like any other string.
func parseTodo(c *fiber.Ctx) (todoBody, error) {
	var b todoBody
	if len(c.Body()) == 0 {
		return b, nil
	}
	if c.Is("json") {
		if err := json.Unmarshal(c.Body(), &b); err != nil {
			return b, errBadBody
		}
		return b, nil
	}
	b.Title = c.FormValue("title")
	b.Description = c.FormValue("description")
	if c.Request().PostArgs().Has("done") {
		raw, _ := json.Marshal(c.FormValue("done"))
		b.Done = raw
	}
	return b, nil
}
