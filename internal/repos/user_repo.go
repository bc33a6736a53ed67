package repos

import (
	"todoapi/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Create stores u, assigning a fresh id when u.ID is empty.
func (r *UserRepo) Create(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	_, err := r.DB.Exec(`INSERT INTO users(id,email,password_hash,role) VALUES(?,?,?,?)`,
		u.ID, u.Email, u.Hash, u.Role)
	return err
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,role,created_at FROM users WHERE id=?`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// ByEmail returns the earliest account registered under email. Emails are not unique.
func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,role,created_at FROM users WHERE email=? ORDER BY rowid LIMIT 1`, email)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.UserSummary, error) {
	out := []domain.UserSummary{}
	err := r.DB.Select(&out, `SELECT id,email,role FROM users ORDER BY rowid`)
	return out, err
}

func (r *UserRepo) Update(u *domain.User) error {
	return affected(r.DB.Exec(`UPDATE users SET email=?, password_hash=?, role=? WHERE id=?`,
		u.Email, u.Hash, u.Role, u.ID))
}

// Delete removes the user row only; authored todos are left in place.
func (r *UserRepo) Delete(id string) error {
	return affected(r.DB.Exec(`DELETE FROM users WHERE id=?`, id))
}
