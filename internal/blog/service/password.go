package service

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

const minPasswordLength = 8

var (
	ErrPasswordTooShort        = errors.New("must be at least 8 characters long")
	ErrPasswordWeakComposition = errors.New("must contain at least 1 digit and 1 letter")
)

// ValidatePassword checks a candidate password against the account password
// policy. Rules are evaluated in order and the first failure wins. On success
// the password is returned unchanged; hashing is a separate concern
// (pkg/cryptox).
func ValidatePassword(candidate string) (string, error) {
	if utf8.RuneCountInString(candidate) < minPasswordLength {
		return "", ErrPasswordTooShort
	}

	var hasDigit, hasLetter bool
	for _, r := range candidate {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit || !hasLetter {
		return "", ErrPasswordWeakComposition
	}

	return candidate, nil
}
