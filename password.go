package accounts

import (
	"errors"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 10

// PasswordMaxLength bounds what we are willing to feed bcrypt.
const PasswordMaxLength = 128

// ValidatePassword checks a candidate password against the account password
// policy and reports every violation at once as a validation.Errors
// multi-error, so clients can render the full list instead of fixing one rule
// per round trip.
func ValidatePassword(password string) error {
	errs := validation.Errors{}

	if len(password) < PasswordMinLength {
		errs["length"] = errors.New("must be at least 10 characters long")
	}
	if len(password) > PasswordMaxLength {
		errs["length"] = errors.New("must be at most 128 characters long")
	}
	if !containsFunc(password, unicode.IsDigit) {
		errs["digit"] = errors.New("must contain at least one digit")
	}
	if !containsFunc(password, unicode.IsLower) {
		errs["lowercase"] = errors.New("must contain at least one lowercase letter")
	}
	if !containsFunc(password, unicode.IsUpper) {
		errs["uppercase"] = errors.New("must contain at least one uppercase letter")
	}
	if !containsFunc(password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		errs["symbol"] = errors.New("must contain at least one symbol")
	}

	return errs.Filter()
}

// passwordRule adapts ValidatePassword for use inside ValidateStruct rules.
func passwordRule(value any) error {
	s, _ := value.(string)
	return ValidatePassword(s)
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
