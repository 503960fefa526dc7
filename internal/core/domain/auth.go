package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// User is the account returned by the backend on login.
type User struct {
	// ID is the server-assigned identifier.
	ID string

	// Name is the display name.
	Name string

	// Email is the account email.
	Email string
}

// Session is the persisted authentication state. It is the CLI analog
// of the web client's stored auth token: every authenticated request
// carries Token as a bearer header.
type Session struct {
	// Token is the bearer token issued at login.
	Token string

	// User is the authenticated account.
	User User

	// CreatedAt is when the session was stored locally.
	CreatedAt time.Time
}

// emailPattern is a permissive shape check; the backend remains the
// authority on deliverability.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail rejects malformed email addresses before any network
// call is made.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// passwordSpecials are the special characters the backend policy accepts.
const passwordSpecials = "@$!%*?&#"

// ValidatePassword enforces the backend password policy locally:
// minimum 8 characters with at least one upper-case letter, one
// lower-case letter, one digit and one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
