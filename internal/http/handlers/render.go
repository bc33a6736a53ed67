package handlers

import (
	"errors"

	"todoapi/internal/domain"
	applog "todoapi/internal/log"

	"github.com/gofiber/fiber/v2"
)

// LocalUserID is the fiber.Ctx local holding the authenticated user id.
const LocalUserID = "userId"

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func result(c *fiber.Ctx, v any) error {
	return c.JSON(fiber.Map{"result": v})
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"message": msg})
}

// ErrorHandler renders every failure as {"message": ...}. Internal causes are
// logged and replaced with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			applog.Error(c, "server.error", err, nil)
			msg = domain.InternalMessage
		}
		return c.Status(fe.Code).JSON(fiber.Map{"message": msg})
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.Internal(err)
	}
	if de.Kind == domain.KindInternal {
		applog.Error(c, "server.error", err, nil)
	}
	return c.Status(de.Kind.Status()).JSON(fiber.Map{"message": de.Message})
}
