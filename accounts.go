package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UserStore is the persistence surface the lifecycle manager needs. GetByEmail
// and GetByUsername skip soft-deleted rows; GetByEmailAny sees them too, which
// the login gate and the reactivation flow rely on.
type UserStore interface {
	TokenStore
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailAny(ctx context.Context, email string) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
}

// Accounts implements the account lifecycle: registration, login validation,
// verification-code flows, email change, soft deletion, and reactivation.
type Accounts struct {
	store    UserStore
	tokens   TokenService
	mailer   Mailer
	cfg      Config
	logger   Logger
	activity ActivitySink
	now      func() time.Time
}

// NewAccounts creates a lifecycle manager over the given store and token
// service. Mailer, logger, activity sink, and clock have working defaults and
// are overridden with the With* builders.
func NewAccounts(store UserStore, tokens TokenService, cfg Config) *Accounts {
	return &Accounts{
		store:    store,
		tokens:   tokens,
		cfg:      cfg.withDefaults(),
		mailer:   noopMailer{},
		logger:   defLogger{},
		activity: noopActivitySink{},
		now:      time.Now,
	}
}

// WithMailer sets the outbound mailer used for verification codes.
func (a *Accounts) WithMailer(m Mailer) *Accounts {
	a.mailer = normalizeMailer(m)
	return a
}

// WithLogger sets the logger.
func (a *Accounts) WithLogger(l Logger) *Accounts {
	if l != nil {
		a.logger = l
	}
	return a
}

// WithActivitySink sets the audit event sink.
func (a *Accounts) WithActivitySink(s ActivitySink) *Accounts {
	a.activity = normalizeActivitySink(s)
	return a
}

// WithClock injects a custom clock, mostly for tests.
func (a *Accounts) WithClock(clock func() time.Time) *Accounts {
	if clock != nil {
		a.now = clock
	}
	return a
}

// RegisterUserMessage is the registration payload.
type RegisterUserMessage struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Validate checks the payload. Password violations surface as a
// validation.Errors multi-error listing every failed policy rule.
func (m RegisterUserMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&m.Phone, validation.By(phoneRule)),
		validation.Field(&m.Password, validation.Required, validation.By(passwordRule)),
	)
}

// RegisterUser creates an unconfirmed account and emails a confirmation code.
//
// Registering an email that belongs to a confirmed account fails with
// ErrUserExists. Registering over an unconfirmed account overwrites the
// profile and password and re-stages a fresh code, so an abandoned signup
// never wedges the address.
func (a *Accounts) RegisterUser(ctx context.Context, msg RegisterUserMessage) (*User, error) {
	if err := msg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid registration payload")
	}

	email := normalizeEmail(msg.Email)

	hash, err := HashPassword(msg.Password)
	if err != nil {
		return nil, err
	}

	user, err := a.store.GetByEmail(ctx, email)
	if err != nil && !goerrors.IsNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up email during registration")
	}

	if user != nil {
		if user.EmailConfirmed {
			return nil, ErrUserExists
		}
		user.FirstName = msg.FirstName
		user.LastName = msg.LastName
		user.Phone = msg.Phone
		user.PasswordHash = hash

		code := GenerateVerificationCode()
		user.StageVerification(PurposeEmailConfirmation, code, a.now().Add(a.cfg.EmailCodeTTL))

		if user, err = a.store.Save(ctx, user); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update unconfirmed account")
		}

		a.sendSafe(ctx, user.Email, subjectVerifyEmail, verificationBody(code, a.cfg.EmailCodeTTL))
		return user, nil
	}

	user = &User{
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
		Username:     email,
		Email:        email,
		Phone:        msg.Phone,
		PasswordHash: hash,
		Roles:        []string{RoleUser},
	}

	if id, err := hashid.NewUUID(email); err == nil {
		user.ID = id
	} else {
		user.ID = uuid.New()
	}

	code := GenerateVerificationCode()
	user.StageVerification(PurposeEmailConfirmation, code, a.now().Add(a.cfg.EmailCodeTTL))

	if user, err = a.store.Register(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
	}

	a.record(ctx, ActivityEventUserRegistered, user, nil)
	a.sendSafe(ctx, user.Email, subjectVerifyEmail, verificationBody(code, a.cfg.EmailCodeTTL))

	return user, nil
}

// ValidateUser checks credentials against the account's lifecycle state and
// returns the user on success.
//
// The gates run in a fixed order so the caller always sees the most specific
// failure: unknown email, unverified email, lockout (administrator before
// temporary), pending deletion, then wrong password. A soft-deleted account
// whose grace window has passed reports ErrEmailNotFound, indistinguishable
// from an account that never existed.
func (a *Accounts) ValidateUser(ctx context.Context, email, password string) (*User, error) {
	user, err := a.store.GetByEmailAny(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrEmailNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user during login")
	}

	now := a.now()

	if !user.EmailConfirmed {
		return nil, ErrEmailNotVerified
	}

	if user.IsLockedOut(now) {
		if user.HasAdminLockout(now) {
			return nil, ErrUserLockedOutByAdmin
		}
		return nil, ErrUserLockedOut
	}

	if user.IsDeleted {
		if user.InDeletionGrace(now) {
			return nil, ErrAccountPendingDeletion
		}
		return nil, ErrEmailNotFound
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		a.trackFailedAttempt(ctx, user, now)
		return nil, ErrIncorrectPassword
	}

	if user.FailedAccessAttempts != 0 || user.LockoutEnd != nil {
		user.FailedAccessAttempts = 0
		user.LockoutEnd = nil
		if _, err := a.store.Save(ctx, user); err != nil {
			a.logger.Warn("failed to reset login counters for %s: %v", user.Email, err)
		}
	}

	a.record(ctx, ActivityEventLoginSuccess, user, nil)

	return user, nil
}

// trackFailedAttempt bumps the failed-attempt counter and, at the threshold,
// locks the account for LockoutDuration and resets the counter so the next
// cycle starts from zero once the lockout lapses.
func (a *Accounts) trackFailedAttempt(ctx context.Context, user *User, now time.Time) {
	user.FailedAccessAttempts++

	locked := false
	if user.FailedAccessAttempts >= a.cfg.MaxFailedAttempts {
		end := now.Add(a.cfg.LockoutDuration)
		user.LockoutEnd = &end
		user.FailedAccessAttempts = 0
		locked = true
	}

	if _, err := a.store.Save(ctx, user); err != nil {
		a.logger.Warn("failed to persist failed login attempt for %s: %v", user.Email, err)
		return
	}

	a.record(ctx, ActivityEventLoginFailure, user, nil)
	if locked {
		a.record(ctx, ActivityEventAccountLocked, user, map[string]any{
			"lockout_end": user.LockoutEnd,
		})
	}
}

// VerifyEmail confirms the account's email address using the code sent at
// registration. The code is single use.
func (a *Accounts) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := a.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrInvalidCode
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user during email verification")
	}

	if err := user.ConsumeVerification(PurposeEmailConfirmation, code, a.now()); err != nil {
		return err
	}

	user.EmailConfirmed = true

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist email verification")
	}

	a.record(ctx, ActivityEventEmailVerified, user, nil)

	return nil
}

// ResendVerificationCode issues a fresh confirmation code for an unconfirmed
// account, invalidating the previous one.
func (a *Accounts) ResendVerificationCode(ctx context.Context, email string) error {
	user, err := a.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrEmailNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user for verification resend")
	}

	if user.EmailConfirmed {
		return ErrEmailAlreadyConfirmed
	}

	code := GenerateVerificationCode()
	user.StageVerification(PurposeEmailConfirmation, code, a.now().Add(a.cfg.EmailCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist verification code")
	}

	a.sendSafe(ctx, user.Email, subjectVerifyEmail, verificationBody(code, a.cfg.EmailCodeTTL))

	return nil
}

// ForgotPassword stages a password-reset code and emails it. Unknown emails
// are a silent no-op so the endpoint cannot be used to enumerate accounts.
func (a *Accounts) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user for password reset")
	}

	code := GenerateVerificationCode()
	user.StageVerification(PurposePasswordReset, code, a.now().Add(a.cfg.PasswordCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist password reset code")
	}

	a.sendSafe(ctx, user.Email, subjectPasswordReset, verificationBody(code, a.cfg.PasswordCodeTTL))

	return nil
}

// ResetPassword completes the forgot-password flow: code plus new password.
// An unknown email reports ErrInvalidCode, the same failure a wrong code
// produces.
func (a *Accounts) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := a.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrInvalidCode
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user during password reset")
	}

	if err := ValidatePassword(newPassword); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
	}

	if err := user.ConsumeVerification(PurposePasswordReset, code, a.now()); err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist password reset")
	}

	a.record(ctx, ActivityEventPasswordChanged, user, map[string]any{"flow": "reset"})

	return nil
}

// InitiatePasswordUpdate stages a code for an authenticated password change
// and emails it to the account's address.
func (a *Accounts) InitiatePasswordUpdate(ctx context.Context, userID uuid.UUID) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	code := GenerateVerificationCode()
	user.StageVerification(PurposePasswordUpdate, code, a.now().Add(a.cfg.PasswordCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist password update code")
	}

	a.sendSafe(ctx, user.Email, subjectPasswordUpdate, verificationBody(code, a.cfg.PasswordCodeTTL))

	return nil
}

// CompletePasswordUpdate finishes the authenticated password change: the
// emailed code plus the current password must both check out. A wrong current
// password fails before anything is persisted, so the staged code survives
// for a retry.
func (a *Accounts) CompletePasswordUpdate(ctx context.Context, userID uuid.UUID, code, currentPassword, newPassword string) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := ValidatePassword(newPassword); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
	}

	if err := user.ConsumeVerification(PurposePasswordUpdate, code, a.now()); err != nil {
		return err
	}

	if err := ComparePasswordAndHash(currentPassword, user.PasswordHash); err != nil {
		return ErrIncorrectPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist password update")
	}

	a.record(ctx, ActivityEventPasswordChanged, user, map[string]any{"flow": "update"})

	return nil
}

// ChangePassword swaps the password for a caller that already re-proved the
// current one, with no emailed code involved.
func (a *Accounts) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := ComparePasswordAndHash(currentPassword, user.PasswordHash); err != nil {
		return ErrIncorrectPassword
	}

	if err := ValidatePassword(newPassword); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist password change")
	}

	a.record(ctx, ActivityEventPasswordChanged, user, map[string]any{"flow": "change"})

	return nil
}

// RequestEmailChange stages a new address and emails a confirmation code to
// it. The current address keeps working until the change is confirmed.
func (a *Accounts) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	newEmail = normalizeEmail(newEmail)
	if err := validation.Validate(newEmail, validation.Required, is.Email); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid email provided")
	}

	if err := a.ensureEmailAvailable(ctx, newEmail, user.ID); err != nil {
		return err
	}

	code := GenerateVerificationCode()
	user.StageEmailChange(newEmail, code, a.now().Add(a.cfg.EmailCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist email change request")
	}

	// The code goes to the address being claimed, proving the caller controls
	// it.
	a.sendSafe(ctx, newEmail, subjectEmailChange, verificationBody(code, a.cfg.EmailCodeTTL))

	return nil
}

// ResendEmailChangeCode re-issues the code for a pending email change. With
// no change pending it is a no-op.
func (a *Accounts) ResendEmailChangeCode(ctx context.Context, userID uuid.UUID) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.NewEmailCandidate == "" {
		return nil
	}

	code := GenerateVerificationCode()
	user.StageEmailChange(user.NewEmailCandidate, code, a.now().Add(a.cfg.EmailCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist email change code")
	}

	a.sendSafe(ctx, user.NewEmailCandidate, subjectEmailChange, verificationBody(code, a.cfg.EmailCodeTTL))

	return nil
}

// ConfirmEmailChange applies a staged email change. Username follows the
// email, and a fresh token pair is minted so the session's claims carry the
// new identity; the refresh expiry is not extended.
func (a *Accounts) ConfirmEmailChange(ctx context.Context, userID uuid.UUID, code string) (*TokenPair, error) {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidate, err := user.ConsumeEmailChange(code, a.now())
	if err != nil {
		return nil, err
	}

	// Re-checked here because the address may have been claimed between the
	// request and the confirmation.
	if err := a.ensureEmailAvailable(ctx, candidate, user.ID); err != nil {
		return nil, err
	}

	previous := user.Email
	user.Email = candidate
	user.Username = candidate
	user.EmailConfirmed = true

	if _, err := a.store.Save(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist email change")
	}

	a.record(ctx, ActivityEventEmailChanged, user, map[string]any{
		"previous_email": previous,
	})

	return a.tokens.CreateToken(ctx, user, false)
}

// DeleteAccount soft deletes the account and schedules permanent deletion
// after the grace period. Outstanding refresh tokens are not revoked here;
// the login gate rejects the account, but an already-issued session keeps
// refreshing until its own expiry.
func (a *Accounts) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsDeleted {
		return nil
	}

	now := a.now()
	scheduled := now.Add(a.cfg.DeletionGracePeriod)
	user.IsDeleted = true
	user.DeletedAt = &now
	user.ScheduledDeletionDate = &scheduled

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist account deletion")
	}

	a.record(ctx, ActivityEventAccountDeleted, user, map[string]any{
		"scheduled_deletion": scheduled,
	})
	a.sendSafe(ctx, user.Email, subjectAccountDeleted, deletionBody(scheduled))

	return nil
}

// RequestAccountReactivation stages a reactivation code for a soft-deleted
// account still inside its grace window. Unknown emails, live accounts, and
// accounts past the window are all silent no-ops.
func (a *Accounts) RequestAccountReactivation(ctx context.Context, email string) error {
	user, err := a.store.GetByEmailAny(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user for reactivation")
	}

	if !user.InDeletionGrace(a.now()) {
		return nil
	}

	code := GenerateVerificationCode()
	user.StageVerification(PurposeReactivation, code, a.now().Add(a.cfg.PasswordCodeTTL))

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist reactivation code")
	}

	a.sendSafe(ctx, user.Email, subjectReactivation, verificationBody(code, a.cfg.PasswordCodeTTL))

	return nil
}

// ReactivateAccount cancels a pending deletion given a valid reactivation
// code. Reactivating an account that is not deleted is a no-op.
func (a *Accounts) ReactivateAccount(ctx context.Context, email, code string) error {
	user, err := a.store.GetByEmailAny(ctx, normalizeEmail(email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrInvalidCode
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up user during reactivation")
	}

	if !user.IsDeleted {
		return nil
	}

	if !user.InDeletionGrace(a.now()) {
		return ErrInvalidCode
	}

	if err := user.ConsumeVerification(PurposeReactivation, code, a.now()); err != nil {
		return err
	}

	user.IsDeleted = false
	user.DeletedAt = nil
	user.ScheduledDeletionDate = nil

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist account reactivation")
	}

	a.record(ctx, ActivityEventAccountReactivated, user, nil)

	return nil
}

// UpdateRoles replaces the account's role set. The base "user" role is always
// retained regardless of the input.
func (a *Accounts) UpdateRoles(ctx context.Context, userID uuid.UUID, roles []string) (*User, error) {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Roles = ensureBaseRole(roles)

	if user, err = a.store.Save(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist role update")
	}

	return user, nil
}

// SetAdminLockout imposes or lifts an administrator lockout. The lockout end
// is written far enough in the future that the login gate can tell it apart
// from failed-password throttling.
func (a *Accounts) SetAdminLockout(ctx context.Context, userID uuid.UUID, locked bool) error {
	user, err := a.getByID(ctx, userID)
	if err != nil {
		return err
	}

	if locked {
		end := a.now().Add(adminLockoutDuration)
		user.LockoutEnd = &end
		user.FailedAccessAttempts = 0
	} else {
		user.LockoutEnd = nil
		user.FailedAccessAttempts = 0
	}

	if _, err := a.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist lockout change")
	}

	if locked {
		a.record(ctx, ActivityEventAccountLocked, user, map[string]any{"admin": true})
	}

	return nil
}

func (a *Accounts) getByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := a.store.GetByID(ctx, id)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user")
	}
	return user, nil
}

func (a *Accounts) ensureEmailAvailable(ctx context.Context, email string, selfID uuid.UUID) error {
	existing, err := a.store.GetByEmailAny(ctx, email)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email availability")
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

// sendSafe delivers mail best-effort. Delivery failures are logged and
// swallowed; a flaky mailer must not fail the lifecycle operation itself.
func (a *Accounts) sendSafe(ctx context.Context, to, subject, body string) {
	if err := a.mailer.Send(ctx, to, subject, body); err != nil {
		a.logger.Warn("failed to send %q to %s: %v", subject, to, err)
	}
}

func (a *Accounts) record(ctx context.Context, typ ActivityEventType, user *User, meta map[string]any) {
	event := ActivityEvent{
		EventType:  typ,
		UserID:     user.ID.String(),
		Status:     user.StatusAt(a.now()),
		Metadata:   meta,
		OccurredAt: a.now(),
	}
	if err := a.activity.Record(ctx, event); err != nil {
		a.logger.Warn("failed to record %s activity: %v", typ, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const (
	subjectVerifyEmail    = "Verify your email address"
	subjectPasswordReset  = "Reset your password"
	subjectPasswordUpdate = "Confirm your password change"
	subjectEmailChange    = "Confirm your new email address"
	subjectAccountDeleted = "Your account has been scheduled for deletion"
	subjectReactivation   = "Reactivate your account"
)

func verificationBody(code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>.</p><p>The code expires in %d minutes.</p>",
		code, int(ttl.Minutes()),
	)
}

func deletionBody(scheduled time.Time) string {
	return fmt.Sprintf(
		"<p>Your account has been deactivated and will be permanently deleted on %s.</p>"+
			"<p>If this was a mistake you can reactivate it before that date.</p>",
		scheduled.Format("January 2, 2006"),
	)
}
