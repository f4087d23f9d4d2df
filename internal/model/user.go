package model

import "strings"

const (
	RoleAdmin     = "ADMIN"
	RoleUser      = "USER"
	RoleDelimiter = ";"
)

// User mirrors a row of the usuario table. Senha holds the bcrypt hash.
type User struct {
	ID    int64
	Nome  *string
	Login string
	Senha string
	Email *string
	Roles string
}

// HasRole reports whether role is one of the delimiter-separated tokens in Roles.
// Matching is exact and case-sensitive.
func (u User) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, RoleDelimiter) {
		if r == role {
			return true
		}
	}
	return false
}

type LoginResponse struct {
	ID    int64   `json:"id"`
	Login string  `json:"login"`
	Nome  *string `json:"nome"`
	Roles string  `json:"roles"`
	Token string  `json:"token"`
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}
