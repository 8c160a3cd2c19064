package models

// UserRole is the categorical role stored alongside each account.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

// User represents a row of the Users table. Password holds either a bcrypt
// hash or, for legacy rows, the plaintext secret.
type User struct {
	Username string   `db:"username" json:"username"`
	Password string   `db:"password" json:"-"`
	Role     UserRole `db:"role" json:"role"`
}
