// Package model holds the domain types shared by handlers and the store.
package model

// User is a managed user record. Password is stored and returned in plain
// text; this API is a middleware demo and does not attempt real credential
// hygiene.
type User struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	Active     bool   `json:"active"`
}

// FullName returns the display name used in login responses.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
