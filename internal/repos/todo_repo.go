package repos

import (
	"todoapi/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TodoRepo struct{ DB *sqlx.DB }

func NewTodoRepo(db *sqlx.DB) *TodoRepo { return &TodoRepo{DB: db} }

const todoCols = `id,title,description,done,author,created_at`

func (r *TodoRepo) Create(t *domain.Todo) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.DB.Exec(`INSERT INTO todos(id,title,description,done,author) VALUES(?,?,?,?,?)`,
		t.ID, t.Title, t.Description, t.Done, t.Author)
	return err
}

func (r *TodoRepo) ByID(id string) (*domain.Todo, error) {
	var t domain.Todo
	if err := r.DB.Get(&t, `SELECT `+todoCols+` FROM todos WHERE id=?`, id); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *TodoRepo) List() ([]domain.Todo, error) {
	out := []domain.Todo{}
	err := r.DB.Select(&out, `SELECT `+todoCols+` FROM todos ORDER BY rowid`)
	return out, err
}

// IDsByAuthor backs the derived todos list on a user record.
func (r *TodoRepo) IDsByAuthor(userID string) ([]string, error) {
	out := []string{}
	err := r.DB.Select(&out, `SELECT id FROM todos WHERE author=? ORDER BY rowid`, userID)
	return out, err
}

// Update writes title, description and done. Author is never rewritten.
func (r *TodoRepo) Update(t *domain.Todo) error {
	return affected(r.DB.Exec(`UPDATE todos SET title=?, description=?, done=? WHERE id=?`,
		t.Title, t.Description, t.Done, t.ID))
}

func (r *TodoRepo) Delete(id string) error {
	return affected(r.DB.Exec(`DELETE FROM todos WHERE id=?`, id))
}
