package domain

type Todo struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Done        bool   `db:"done" json:"done"`
	Author      string `db:"author" json:"author"`
	CreatedAt   string `db:"created_at" json:"-"`
}
