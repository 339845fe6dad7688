package accounts

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// VerificationPurpose tags what a pending verification code is allowed to
// authorize. A code only matches when the purpose matches too.
type VerificationPurpose string

const (
	PurposeEmailConfirmation VerificationPurpose = "email_confirmation"
	PurposePasswordReset     VerificationPurpose = "password_reset"
	PurposePasswordUpdate    VerificationPurpose = "password_update"
	PurposeReactivation      VerificationPurpose = "reactivation"
)

// GenerateVerificationCode returns a 6-digit numeric code. Codes are short
// lived and rate limited at the HTTP boundary, so they do not need to be
// cryptographically unpredictable.
func GenerateVerificationCode() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// StageVerification writes the shared verification slot, replacing whatever
// flow was previously in flight.
func (u *User) StageVerification(purpose VerificationPurpose, code string, expiry time.Time) {
	u.VerificationCode = code
	u.VerificationCodeExpiry = &expiry
	u.VerificationPurpose = purpose
}

// ConsumeVerification matches a presented code against the shared slot and
// clears the slot on success. Value mismatch, purpose mismatch, and expiry all
// fail with the same ErrInvalidCode so callers cannot learn which check
// failed. Callers persist the record afterwards; a failure between consume and
// persist leaves the stored code intact.
func (u *User) ConsumeVerification(purpose VerificationPurpose, code string, now time.Time) error {
	if u.VerificationCode == "" || code == "" || u.VerificationCode != code {
		return ErrInvalidCode
	}
	if u.VerificationPurpose != purpose {
		return ErrInvalidCode
	}
	if u.VerificationCodeExpiry == nil || !u.VerificationCodeExpiry.After(now) {
		return ErrInvalidCode
	}

	u.ClearVerification()
	return nil
}

// ClearVerification empties the shared verification slot.
func (u *User) ClearVerification() {
	u.VerificationCode = ""
	u.VerificationCodeExpiry = nil
	u.VerificationPurpose = ""
}

// StageEmailChange writes the email-change slot. This slot is separate from
// the shared verification slot so an email change can run alongside another
// pending flow.
func (u *User) StageEmailChange(candidate, code string, expiry time.Time) {
	u.NewEmailCandidate = candidate
	u.NewEmailCode = code
	u.NewEmailCodeExpiry = &expiry
}

// ConsumeEmailChange validates a presented email-change code and returns the
// staged candidate address, clearing the slot. Failures collapse into
// ErrInvalidCode like the shared slot.
func (u *User) ConsumeEmailChange(code string, now time.Time) (string, error) {
	if u.NewEmailCandidate == "" || u.NewEmailCode == "" || code == "" || u.NewEmailCode != code {
		return "", ErrInvalidCode
	}
	if u.NewEmailCodeExpiry == nil || !u.NewEmailCodeExpiry.After(now) {
		return "", ErrInvalidCode
	}

	candidate := u.NewEmailCandidate
	u.ClearEmailChange()
	return candidate, nil
}

// ClearEmailChange empties the email-change staging slot.
func (u *User) ClearEmailChange() {
	u.NewEmailCandidate = ""
	u.NewEmailCode = ""
	u.NewEmailCodeExpiry = nil
}
