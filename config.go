package accounts

import "time"

// adminLockoutHorizon separates administrator-imposed lockouts from the
// temporary ones produced by failed-password throttling. Admin lockouts are
// stored as "far future" lockout ends; anything beyond the horizon is treated
// as admin-imposed.
const adminLockoutHorizon = 100 * 365 * 24 * time.Hour

// adminLockoutDuration is the lockout end written by SetAdminLockout. It only
// needs to sit beyond adminLockoutHorizon.
const adminLockoutDuration = 200 * 365 * 24 * time.Hour

// Config carries signing and lifecycle tuning for the package. It is a plain
// value object handed to constructors; there is no ambient configuration.
type Config struct {
	// SigningKey is the HMAC secret used to sign and verify access tokens.
	SigningKey []byte
	// Issuer is stamped into the iss claim and enforced on refresh.
	Issuer string
	// Audience is stamped into the aud claim and enforced on refresh.
	Audience []string

	// TokenExpiration is the access token lifetime.
	TokenExpiration time.Duration
	// RefreshExpiration is the refresh token lifetime, (re)set whenever a
	// token pair is created with populateExpiry.
	RefreshExpiration time.Duration
	// RefreshGracePeriod is how long a rotated-out refresh token remains
	// acceptable in the previous-token slot.
	RefreshGracePeriod time.Duration

	// MaxFailedAttempts is the number of consecutive wrong-password attempts
	// before a temporary lockout.
	MaxFailedAttempts int
	// LockoutDuration is the length of a temporary lockout.
	LockoutDuration time.Duration

	// DeletionGracePeriod is how long a soft-deleted account can still be
	// reactivated before deletion becomes permanent.
	DeletionGracePeriod time.Duration

	// EmailCodeTTL is the lifetime of email-confirmation and email-change
	// verification codes.
	EmailCodeTTL time.Duration
	// PasswordCodeTTL is the lifetime of password-reset, password-update, and
	// reactivation verification codes.
	PasswordCodeTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.TokenExpiration == 0 {
		c.TokenExpiration = 15 * time.Minute
	}
	if c.RefreshExpiration == 0 {
		c.RefreshExpiration = 7 * 24 * time.Hour
	}
	if c.RefreshGracePeriod == 0 {
		c.RefreshGracePeriod = time.Minute
	}
	if c.MaxFailedAttempts == 0 {
		c.MaxFailedAttempts = 5
	}
	if c.LockoutDuration == 0 {
		c.LockoutDuration = 5 * time.Minute
	}
	if c.DeletionGracePeriod == 0 {
		c.DeletionGracePeriod = 30 * 24 * time.Hour
	}
	if c.EmailCodeTTL == 0 {
		c.EmailCodeTTL = 30 * time.Minute
	}
	if c.PasswordCodeTTL == 0 {
		c.PasswordCodeTTL = 15 * time.Minute
	}
	return c
}
