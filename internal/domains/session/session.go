package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind the browser cookie. It carries
// everything the middleware needs to resolve the acting staff member without
// touching the users table, and never the password hash.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewID() string {
	return uuid.NewString()
}
