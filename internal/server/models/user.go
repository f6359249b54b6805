package models

import "time"

// User is the stored identity record. PasswordHash never leaves the
// service layer; callers only ever see an Identity.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the externally visible view of a User.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Identity returns the public view of the user, without the password hash.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name}
}
