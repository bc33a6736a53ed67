package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const bodyLimit = 1 << 20 // 1 MiB

// NewApp builds the fiber app with middleware and every route mounted.
func NewApp(d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "todoapi",
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if d.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: d.AccessLog}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowCredentials: true,
		ExposeHeaders:    fiber.HeaderSetCookie,
	}))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
		app.Get("/metrics", d.Metrics.Handler())
	}

	Mount(app, d)
	return app
}

// Mount registers the API routes on r.
func Mount(r fiber.Router, d *Deps) {
	authn := Authenticate(d.Auth, d.Metrics)
	ownerOrAdmin := RequireTodoOwnerOrAdmin(d.Authz, d.Metrics)
	selfOrAdmin := RequireSelfOrAdmin(d.Authz, d.Metrics)

	r.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	r.Post("/auth/register", d.AuthHandler.Register)
	r.Post("/auth/login", d.AuthHandler.Login)
	r.Get("/me", authn, d.AuthHandler.Me)

	r.Get("/users", d.UserHandler.List)
	r.Get("/users/:id", d.UserHandler.Get)
	r.Put("/users/:id", authn, selfOrAdmin, d.UserHandler.Update)
	r.Delete("/users/:id", authn, selfOrAdmin, d.UserHandler.Delete)

	r.Get("/todos", d.TodoHandler.List)
	r.Get("/todos/:id", d.TodoHandler.Get)
	r.Post("/todos", authn, d.TodoHandler.Create)
	r.Put("/todos/:id", authn, ownerOrAdmin, d.TodoHandler.Update)
	r.Delete("/todos/:id", authn, ownerOrAdmin, d.TodoHandler.Delete)
}
