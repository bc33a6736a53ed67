package services

import (
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/security"
	"todoapi/internal/validate"
)

type AuthService struct {
	Users  UserStore
	Todos  TodoStore
	Hasher *security.Hasher
	Tokens *security.TokenIssuer
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Register creates a plain user. The returned record carries the hash
// internally; it is excluded from every JSON response.
func (s *AuthService) Register(email, password string) (*domain.User, error) {
	email, ok := validate.Required(email)
	if !ok {
		return nil, domain.Validation("Email is required")
	}
	if password == "" {
		return nil, domain.Validation("Password is required")
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, domain.Internal(err)
	}
	u := &domain.User{Email: email, Hash: hash, Role: domain.RoleUser}
	if err := s.Users.Create(u); err != nil {
		return nil, domain.Internal(err)
	}
	return u, nil
}

func (s *AuthService) Login(email, password string) (*Session, error) {
	email, ok := validate.Required(email)
	if !ok {
		return nil, domain.Validation("Email is required")
	}
	if password == "" {
		return nil, domain.Validation("Password is required")
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, storeErr(err, msgUserNotFound)
	}
	if !s.Hasher.Verify(password, u.Hash) {
		return nil, domain.InvalidCredentials()
	}
	tok, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &Session{Token: tok, ExpiresAt: exp, User: u}, nil
}

// Authenticate resolves a presented token to a user id.
func (s *AuthService) Authenticate(token string) (string, error) {
	id, err := s.Tokens.Verify(token)
	if err != nil {
		return "", domain.InvalidToken(err)
	}
	return id, nil
}

// Me loads the caller's own record with its derived todo ids.
func (s *AuthService) Me(userID string) (*domain.User, error) {
	u, err := s.Users.ByID(userID)
	if err != nil {
		return nil, storeErr(err, msgUserNotFound)
	}
	ids, err := s.Todos.IDsByAuthor(u.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	u.Todos = ids
	return u, nil
}
