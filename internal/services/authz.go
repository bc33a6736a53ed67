package services

import (
	"fmt"

	"todoapi/internal/domain"
)

const (
	PolicyOwnerOrAdmin = "owner_or_admin"
	PolicySelfOrAdmin  = "self_or_admin"
)

// CanMutateTodo allows admins and the todo's author.
func CanMutateTodo(actor *domain.User, t *domain.Todo) bool {
	if actor == nil || t == nil {
		return false
	}
	return actor.IsAdmin() || t.Author == actor.ID
}

// CanMutateUser allows admins and the account holder.
func CanMutateUser(actor *domain.User, targetID string) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == targetID
}

// Authorizer loads the target and the acting user fresh from the stores and
// applies one of the two policies.
type Authorizer struct {
	Users UserStore
	Todos TodoStore
}

func NewAuthorizer(users UserStore, todos TodoStore) *Authorizer {
	return &Authorizer{Users: users, Todos: todos}
}

// AuthorizeTodo returns nil when actorID may mutate todo todoID.
func (a *Authorizer) AuthorizeTodo(actorID, todoID string) error {
	t, err := a.Todos.ByID(todoID)
	if err != nil {
		return storeErr(err, msgTodoNotFound)
	}
	actor, err := a.actor(actorID)
	if err != nil {
		return err
	}
	if !CanMutateTodo(actor, t) {
		return domain.Forbidden()
	}
	return nil
}

// AuthorizeUser returns nil when actorID may mutate user targetID.
func (a *Authorizer) AuthorizeUser(actorID, targetID string) error {
	target, err := a.Users.ByID(targetID)
	if err != nil {
		return storeErr(err, msgUserNotFound)
	}
	actor, err := a.actor(actorID)
	if err != nil {
		return err
	}
	if !CanMutateUser(actor, target.ID) {
		return domain.Forbidden()
	}
	return nil
}

// actor resolves the authenticated user. A verified token whose user is gone
// is an internal failure, not a client error.
func (a *Authorizer) actor(id string) (*domain.User, error) {
	u, err := a.Users.ByID(id)
	if err != nil {
		return nil, domain.Internal(fmt.Errorf("acting user %q: %w", id, err))
	}
	return u, nil
}
