// Package account implements the local-only sign-in stub. Nothing leaves
// the device and passwords are checked for shape only, never stored.
package account

import (
	"strconv"
	"strings"

	"github.com/abhisek/paomind/internal/store"
	"github.com/abhisek/paomind/internal/validation"
)

// Mode selects between signing in and signing up.
type Mode int

const (
	SignIn Mode = iota
	SignUp
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Form is what the auth screen collects.
type Form struct {
	Name     string
	Email    string
	Password string
}

// Validate returns per-field problems keyed "name", "email" and
// "password". An empty map means the form is acceptable.
func (f Form) Validate(mode Mode) map[string]string {
	problems := map[string]string{}
	if mode == SignUp {
		if err := validation.Var("Name", strings.TrimSpace(f.Name), "required"); err != nil {
			problems["name"] = err.Error()
		}
	}
	if err := validation.Var("Email", strings.TrimSpace(f.Email), "required,email"); err != nil {
		problems["email"] = err.Error()
	}
	if err := validation.Var("Password", f.Password, "required,min="+strconv.Itoa(MinPasswordLength)); err != nil {
		problems["password"] = err.Error()
	}
	return problems
}

// Submit validates f and returns the identity to record. A sign-in uses
// the part of the email before '@' as the display name.
func Submit(mode Mode, f Form) (store.User, map[string]string) {
	if problems := f.Validate(mode); len(problems) > 0 {
		return store.User{}, problems
	}
	email := strings.TrimSpace(f.Email)
	name := strings.TrimSpace(f.Name)
	if mode == SignIn {
		name, _, _ = strings.Cut(email, "@")
	}
	return store.User{Email: email, Name: name}, nil
}

// Guest is the identity used when the user skips sign-in.
func Guest() store.User {
	return store.User{Email: "guest@localhost", Name: "Guest"}
}
