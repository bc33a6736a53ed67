package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"todoapi/internal/domain"
	"todoapi/internal/repos"
	"todoapi/internal/security"
	"todoapi/internal/services"
)

type fixture struct {
	users  *repos.UserRepo
	todos  *repos.TodoRepo
	hasher *security.Hasher
	tokens *security.TokenIssuer
	auth   *services.AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	f := &fixture{
		users:  repos.NewUserRepo(db),
		todos:  repos.NewTodoRepo(db),
		hasher: security.NewHasher(4),
		tokens: security.NewTokenIssuer("test-secret", 0),
	}
	f.auth = &services.AuthService{Users: f.users, Todos: f.todos, Hasher: f.hasher, Tokens: f.tokens}
	return f
}

func (f *fixture) user(t *testing.T, email string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, Hash: "unused", Role: role}
	require.NoError(t, f.users.Create(u))
	return u
}

func (f *fixture) todo(t *testing.T, author string) *domain.Todo {
	t.Helper()
	td := &domain.Todo{Title: "t", Author: author}
	require.NoError(t, f.todos.Create(td))
	return td
}

func requireKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, domain.KindOf(err), "err=%v", err)
}

// brokenUsers fails every lookup the way an unreachable store would.
type brokenUsers struct{ services.UserStore }

var errStoreDown = errors.New("store unavailable")

func (brokenUsers) ByID(string) (*domain.User, error)    { return nil, errStoreDown }
func (brokenUsers) ByEmail(string) (*domain.User, error) { return nil, errStoreDown }
func (brokenUsers) List() ([]domain.UserSummary, error)  { return nil, errStoreDown }
