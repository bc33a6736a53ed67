package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// User is a stored identity. Hash never leaves the service in a response body.
type User struct {
	ID        string `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	Hash      string `db:"password_hash" json:"-"`
	Role      Role   `db:"role" json:"role"`
	CreatedAt string `db:"created_at" json:"-"`

	// Todos is derived from the todo store on read and is not authoritative.
	Todos []string `db:"-" json:"todos,omitempty"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// UserSummary is the projection returned by the public user listing.
type UserSummary struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	Role  Role   `db:"role" json:"role"`
}
