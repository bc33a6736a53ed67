package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/domain"
	"todoapi/internal/services"
)

func TestCreateTodoForcesAuthor(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)

	td, err := svc.Create(alice.ID, services.TodoInput{Title: "write tests", Description: "all of them"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, td.Author)
	assert.False(t, td.Done)

	stored, err := f.todos.ByID(td.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, stored.Author)
	assert.Equal(t, "all of them", stored.Description)
}

func TestCreateTodoDoneCast(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)

	cases := map[string]bool{
		``:        false,
		`false`:   false,
		`0`:       false,
		`null`:    false,
		`"false"`: false,
		`"0"`:     false,
		`"no"`:    false,
		`"off"`:   false,
		`true`:    true,
		`"yes"`:   true,
		`"on"`:    true,
		`1`:       true,
	}
	for raw, want := range cases {
		td, err := svc.Create(alice.ID, services.TodoInput{Title: "x", Done: json.RawMessage(raw)})
		require.NoError(t, err)
		assert.Equal(t, want, td.Done, "done=%q", raw)
	}
}

func TestCreateTodoKeepsTitleAsSent(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)

	td, err := svc.Create(alice.ID, services.TodoInput{Title: "  padded title "})
	require.NoError(t, err)
	assert.Equal(t, "  padded title ", td.Title)

	stored, err := f.todos.ByID(td.ID)
	require.NoError(t, err)
	assert.Equal(t, "  padded title ", stored.Title)
}

func TestCreateTodoRequiresTitleAndLiveAuthor(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)

	_, err := svc.Create(alice.ID, services.TodoInput{Title: "   "})
	requireKind(t, err, domain.KindValidation)

	_, err = svc.Create("ghost", services.TodoInput{Title: "x"})
	requireKind(t, err, domain.KindUnauthenticated)

	_, err = services.NewTodoService(f.todos, brokenUsers{f.users}).Create(alice.ID, services.TodoInput{Title: "x"})
	requireKind(t, err, domain.KindInternal)
}

func TestUpdateTodoDoneCoercion(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)

	cases := map[string]bool{
		`false`:   false,
		``:        true,
		`true`:    true,
		`"no"`:    true,
		`0`:       true,
		`null`:    true,
		`"false"`: true,
	}
	for raw, want := range cases {
		td := f.todo(t, alice.ID)
		got, err := svc.Update(td.ID, services.TodoInput{Done: json.RawMessage(raw)})
		require.NoError(t, err)
		assert.Equal(t, want, got.Done, "done=%q", raw)

		stored, err := f.todos.ByID(td.ID)
		require.NoError(t, err)
		assert.Equal(t, want, stored.Done, "stored done=%q", raw)
	}
}

func TestUpdateTodoKeepsUnsuppliedFields(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)
	td, err := svc.Create(alice.ID, services.TodoInput{Title: "old", Description: "keep me"})
	require.NoError(t, err)

	got, err := svc.Update(td.ID, services.TodoInput{Title: "new", Done: json.RawMessage(`false`)})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, alice.ID, got.Author)

	_, err = svc.Update("nope", services.TodoInput{})
	requireKind(t, err, domain.KindNotFound)
}

func TestGetAndDeleteTodo(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@x.com", domain.RoleUser)
	svc := services.NewTodoService(f.todos, f.users)
	td := f.todo(t, alice.ID)

	got, err := svc.Get(td.ID)
	require.NoError(t, err)
	assert.Equal(t, td.ID, got.ID)

	require.NoError(t, svc.Delete(td.ID))
	_, err = svc.Get(td.ID)
	requireKind(t, err, domain.KindNotFound)
	requireKind(t, svc.Delete(td.ID), domain.KindNotFound)
}
