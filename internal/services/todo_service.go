package services

import (
	"encoding/json"
	"errors"

	"todoapi/internal/domain"
	"todoapi/internal/repos"
	"todoapi/internal/validate"
)

type TodoService struct {
	Todos TodoStore
	Users UserStore
}

func NewTodoService(todos TodoStore, users UserStore) *TodoService {
	return &TodoService{Todos: todos, Users: users}
}

// TodoInput is a create or update body. Done keeps the raw client value
// because create and update coerce it differently.
type TodoInput struct {
	Title       string
	Description string
	Done        json.RawMessage
}

func (s *TodoService) List() ([]domain.Todo, error) {
	out, err := s.Todos.List()
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

func (s *TodoService) Get(id string) (*domain.Todo, error) {
	t, err := s.Todos.ByID(id)
	if err != nil {
		return nil, storeErr(err, msgTodoNotFound)
	}
	return t, nil
}

// Create stores a todo authored by authorID; any author in the request is
// ignored. Done follows Boolean casting of the supplied value. The title is
// stored as sent.
func (s *TodoService) Create(authorID string, in TodoInput) (*domain.Todo, error) {
	if _, err := s.Users.ByID(authorID); err != nil {
		return nil, authorErr(err)
	}
	if _, ok := validate.Required(in.Title); !ok {
		return nil, domain.Validation("Title is required")
	}
	t := &domain.Todo{
		Title:       in.Title,
		Description: in.Description,
		Done:        validate.Boolean(in.Done),
		Author:      authorID,
	}
	if err := s.Todos.Create(t); err != nil {
		return nil, domain.Internal(err)
	}
	return t, nil
}

// Update replaces title and description when non-empty. Done becomes false
// only for a literal JSON false and true for anything else, omission included.
func (s *TodoService) Update(id string, in TodoInput) (*domain.Todo, error) {
	t, err := s.Todos.ByID(id)
	if err != nil {
		return nil, storeErr(err, msgTodoNotFound)
	}
	if in.Title != "" {
		t.Title = in.Title
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	t.Done = !validate.LiteralFalse(in.Done)
	if err := s.Todos.Update(t); err != nil {
		return nil, storeErr(err, msgTodoNotFound)
	}
	return t, nil
}

func (s *TodoService) Delete(id string) error {
	if err := s.Todos.Delete(id); err != nil {
		return storeErr(err, msgTodoNotFound)
	}
	return nil
}

// authorErr maps a failed author lookup: a token for a vanished account is
// treated as no authentication at all.
func authorErr(err error) error {
	if errors.Is(err, repos.ErrNotFound) {
		return domain.Unauthenticated()
	}
	return domain.Internal(err)
}
