package dto

import (
	"comfort/internal/domains/session"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName,omitempty"`
}

func (l *LoginResponse) FromSession(sess session.Session) {
	l.Username = sess.Username
	l.Role = sess.Role
	l.FullName = sess.FullName
}

// StatusResponse reports whether the caller holds a live session. Identity
// fields are only present when authenticated.
type StatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}
