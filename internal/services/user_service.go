package services

import (
	"todoapi/internal/domain"
	"todoapi/internal/security"
)

type UserService struct {
	Users  UserStore
	Hasher *security.Hasher
}

func NewUserService(users UserStore, hasher *security.Hasher) *UserService {
	return &UserService{Users: users, Hasher: hasher}
}

func (s *UserService) List() ([]domain.UserSummary, error) {
	out, err := s.Users.List()
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

func (s *UserService) Get(id string) (*domain.UserSummary, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, storeErr(err, msgUserNotFound)
	}
	return &domain.UserSummary{ID: u.ID, Email: u.Email, Role: u.Role}, nil
}

// UserPatch replaces a field only when it is non-empty.
type UserPatch struct {
	Email    string
	Password string
}

// Update applies p. A new password is hashed before it is stored.
func (s *UserService) Update(id string, p UserPatch) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, storeErr(err, msgUserNotFound)
	}
	if p.Email != "" {
		u.Email = p.Email
	}
	if p.Password != "" {
		hash, err := s.Hasher.Hash(p.Password)
		if err != nil {
			return nil, domain.Internal(err)
		}
		u.Hash = hash
	}
	if err := s.Users.Update(u); err != nil {
		return nil, storeErr(err, msgUserNotFound)
	}
	return u, nil
}

// Delete removes the account. Todos it authored are kept.
func (s *UserService) Delete(id string) error {
	if err := s.Users.Delete(id); err != nil {
		return storeErr(err, msgUserNotFound)
	}
	return nil
}
