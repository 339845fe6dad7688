package accounts

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

// phoneRule validates an optional phone number. Numbers must be in
// international format (leading +) since accounts are not tied to a region.
func phoneRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	num, err := phonenumbers.Parse(s, "")
	if err != nil {
		return errors.New("must be a phone number in international format")
	}
	if !phonenumbers.IsValidNumber(num) {
		return errors.New("must be a valid phone number")
	}

	return nil
}
