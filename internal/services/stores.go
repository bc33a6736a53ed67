package services

import (
	"errors"

	"todoapi/internal/domain"
	"todoapi/internal/repos"
)

// UserStore is the credential store. *repos.UserRepo satisfies it.
type UserStore interface {
	Create(u *domain.User) error
	ByID(id string) (*domain.User, error)
	ByEmail(email string) (*domain.User, error)
	List() ([]domain.UserSummary, error)
	Update(u *domain.User) error
	Delete(id string) error
}

// TodoStore is satisfied by *repos.TodoRepo.
type TodoStore interface {
	Create(t *domain.Todo) error
	ByID(id string) (*domain.Todo, error)
	List() ([]domain.Todo, error)
	IDsByAuthor(userID string) ([]string, error)
	Update(t *domain.Todo) error
	Delete(id string) error
}

const (
	msgUserNotFound = "User not found"
	msgTodoNotFound = "Todo not found"
)

// storeErr turns a store failure into the user-facing taxonomy.
func storeErr(err error, notFoundMsg string) error {
	if errors.Is(err, repos.ErrNotFound) {
		return domain.NotFound(notFoundMsg)
	}
	return domain.Internal(err)
}
