package model

import "comfort/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldEmail    = "email"
	FieldFullName = "full_name"
)

// User is a staff account. Role is stored as admin or manager, but only the
// authenticated/unauthenticated distinction is enforced by any route.
type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
	Email    string `db:"email"`
	FullName string `db:"full_name"`
	model.Metadata
}
