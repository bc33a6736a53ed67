package handlers

import (
	"io"

	"todoapi/internal/config"
	"todoapi/internal/observability"
	"todoapi/internal/repos"
	"todoapi/internal/security"
	"todoapi/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Config  config.Config
	Metrics *observability.Metrics
	// AccessLog receives one line per request; nil disables it.
	AccessLog io.Writer

	Auth  *services.AuthService
	Authz *services.Authorizer

	AuthHandler *AuthHandler
	UserHandler *UserHandler
	TodoHandler *TodoHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, m *observability.Metrics) *Deps {
	userRepo := repos.NewUserRepo(db)
	todoRepo := repos.NewTodoRepo(db)

	hasher := security.NewHasher(cfg.BcryptCost)
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := &services.AuthService{Users: userRepo, Todos: todoRepo, Hasher: hasher, Tokens: tokens}
	userSvc := services.NewUserService(userRepo, hasher)
	todoSvc := services.NewTodoService(todoRepo, userRepo)

	return &Deps{
		Config:      cfg,
		Metrics:     m,
		Auth:        authSvc,
		Authz:       services.NewAuthorizer(userRepo, todoRepo),
		AuthHandler: &AuthHandler{Auth: authSvc, Config: cfg, Metrics: m},
		UserHandler: &UserHandler{Users: userSvc},
		TodoHandler: &TodoHandler{Todos: todoSvc},
	}
}
