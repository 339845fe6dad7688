package accounts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user record. The package mutates its fields through every
// lifecycle operation; persistence is owned by the Users repository.
//
// Email doubles as the login handle, so Username and Email carry the same
// value and both change together during a confirmed email change.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	FirstName    string    `bun:"first_name,notnull" json:"first_name,omitempty"`
	LastName     string    `bun:"last_name,notnull" json:"last_name,omitempty"`
	Username     string    `bun:"username,notnull,unique" json:"username,omitempty"`
	Email        string    `bun:"email,notnull,unique" json:"email,omitempty"`
	Phone        string    `bun:"phone_number" json:"phone_number,omitempty"`
	PasswordHash string    `bun:"password_hash" json:"password_hash,omitempty"`
	Roles        []string  `bun:"roles,type:jsonb" json:"roles,omitempty"`

	// Session state. The previous-token pair is a one-slot history that backs
	// the refresh grace period; once PreviousRefreshTokenExpiry passes the
	// slot is dead weight, still stored but never matched.
	RefreshToken               string     `bun:"refresh_token" json:"-"`
	RefreshTokenExpiry         time.Time  `bun:"refresh_token_expiry,nullzero" json:"-"`
	PreviousRefreshToken       string     `bun:"previous_refresh_token" json:"-"`
	PreviousRefreshTokenExpiry *time.Time `bun:"previous_refresh_token_expiry,nullzero" json:"-"`

	// Verification state: a single slot shared by the email-confirmation,
	// password-reset, password-update, and reactivation flows. Purpose is the
	// discriminant; only one flow can be in flight at a time.
	VerificationCode       string              `bun:"verification_code" json:"-"`
	VerificationCodeExpiry *time.Time          `bun:"verification_code_expiry,nullzero" json:"-"`
	VerificationPurpose    VerificationPurpose `bun:"verification_purpose" json:"-"`

	// Email-change staging. Separate from the verification slot so an email
	// change can coexist with, e.g., a pending password reset.
	NewEmailCandidate  string     `bun:"new_email_candidate" json:"-"`
	NewEmailCode       string     `bun:"new_email_code" json:"-"`
	NewEmailCodeExpiry *time.Time `bun:"new_email_code_expiry,nullzero" json:"-"`

	EmailConfirmed        bool       `bun:"email_confirmed" json:"email_confirmed,omitempty"`
	IsDeleted             bool       `bun:"is_deleted" json:"is_deleted,omitempty"`
	DeletedAt             *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	ScheduledDeletionDate *time.Time `bun:"scheduled_deletion_date,nullzero" json:"scheduled_deletion_date,omitempty"`

	LockoutEnd           *time.Time `bun:"lockout_end,nullzero" json:"lockout_end,omitempty"`
	FailedAccessAttempts int        `bun:"failed_access_attempts" json:"failed_access_attempts,omitempty"`

	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// AccountStatus is the derived lifecycle state of a user record.
type AccountStatus string

const (
	StatusUnconfirmed     AccountStatus = "unconfirmed"
	StatusActive          AccountStatus = "active"
	StatusLockedOut       AccountStatus = "locked_out"
	StatusPendingDeletion AccountStatus = "pending_deletion"
	StatusDeletionExpired AccountStatus = "deletion_expired"
)

// StatusAt derives the account status from the record's flags. The precedence
// (unconfirmed before locked out before deleted) mirrors the login gate in
// Accounts.ValidateUser and must stay in sync with it.
func (u *User) StatusAt(now time.Time) AccountStatus {
	switch {
	case !u.EmailConfirmed:
		return StatusUnconfirmed
	case u.IsLockedOut(now):
		return StatusLockedOut
	case u.IsDeleted:
		if u.ScheduledDeletionDate != nil && now.Before(*u.ScheduledDeletionDate) {
			return StatusPendingDeletion
		}
		return StatusDeletionExpired
	default:
		return StatusActive
	}
}

// IsLockedOut reports whether a lockout end is set and still in the future.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// HasAdminLockout reports whether the lockout was imposed by an administrator
// rather than by failed-password throttling.
func (u *User) HasAdminLockout(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now.Add(adminLockoutHorizon))
}

// InDeletionGrace reports whether a soft-deleted record can still be
// reactivated.
func (u *User) InDeletionGrace(now time.Time) bool {
	return u.IsDeleted && u.ScheduledDeletionDate != nil && now.Before(*u.ScheduledDeletionDate)
}

// EnsureRoles guarantees the base role invariant: every account holds the
// "user" role in addition to any elevated roles.
func (u *User) EnsureRoles() {
	u.Roles = ensureBaseRole(u.Roles)
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
