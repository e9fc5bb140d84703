package models

import "strings"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// DisplayName falls back to the local part of the e-mail address.
func (r *LoginResponse) DisplayName(email string) string {
	if r.User != nil && r.User.Name != "" {
		return r.User.Name
	}

	local, _, _ := strings.Cut(email, "@")

	return local
}
