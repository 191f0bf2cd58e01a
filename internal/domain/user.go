package domain

import (
	"net/mail"
	"strings"
	"time"
)

// User represents a registered user that tasks can be assigned to.
// The ID is assigned by the store on creation and is zero until then.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with the given name and email and sets the
// creation timestamp. The ID is left zero; the store assigns it on insert.
// Returns a *ValidationError if any field rule fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// It accumulates every failing field rule so a single response can report
// all of them, and returns a *ValidationError if any rule failed.
func (u *User) Validate() error {
	var verr ValidationError

	if u.Name == "" {
		verr.Add("name", "is required")
	}

	switch {
	case u.Email == "":
		verr.Add("email", "is required")
	case !validEmail(u.Email):
		verr.Add("email", "has invalid format")
	}

	return verr.ErrOrNil()
}

// validEmail reports whether the address parses as an RFC 5322 address.
// mail.ParseAddress accepts "Name <addr>" forms, so the parsed address must
// round-trip to the bare input.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
