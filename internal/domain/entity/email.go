package entity

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength     = 254
	maxEmailLocalBytes = 64
)

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
	`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Email is an immutable, validated and lowercased email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns its normalized form.
func NewEmail(raw string) (Email, error) {
	if !isValidEmail(raw) {
		return Email{}, ErrInvalidEmailFormat
	}
	return Email{value: strings.ToLower(raw)}, nil
}

func isValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	local, _, _ := strings.Cut(s, "@")
	if len(local) > maxEmailLocalBytes {
		return false
	}
	return emailPattern.MatchString(s)
}

func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

// Equals compares normalized values, so it is case-insensitive.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
