package accounts

import (
	goerrors "github.com/goliatone/go-errors"
)

// ErrEmailNotFound is returned when no account exists for the given email.
// Soft-deleted accounts whose deletion grace window has passed are reported
// with this same error so they are indistinguishable from absent accounts.
var ErrEmailNotFound = goerrors.New("email not found", goerrors.CategoryNotFound).
	WithTextCode("EMAIL_NOT_FOUND").
	WithCode(goerrors.CodeNotFound)

// ErrUserNotFound is returned when a user id does not resolve to an account.
var ErrUserNotFound = goerrors.New("user not found", goerrors.CategoryNotFound).
	WithTextCode("USER_NOT_FOUND").
	WithCode(goerrors.CodeNotFound)

// ErrUserExists is returned when registering an email that already belongs to
// a confirmed account.
var ErrUserExists = goerrors.New("an account with this email already exists", goerrors.CategoryConflict).
	WithTextCode("USER_EXISTS").
	WithCode(goerrors.CodeConflict)

// ErrEmailNotVerified blocks login until the address has been confirmed.
var ErrEmailNotVerified = goerrors.New("email address has not been verified", goerrors.CategoryAuth).
	WithTextCode("EMAIL_NOT_VERIFIED").
	WithCode(goerrors.CodeBadRequest)

// ErrEmailAlreadyConfirmed is returned when resending a confirmation code to
// an address that is already verified.
var ErrEmailAlreadyConfirmed = goerrors.New("email is already confirmed", goerrors.CategoryValidation).
	WithTextCode("EMAIL_ALREADY_CONFIRMED").
	WithCode(goerrors.CodeBadRequest)

// ErrEmailTaken is returned when staging an email change to an address that
// belongs to another account.
var ErrEmailTaken = goerrors.New("email is already in use", goerrors.CategoryConflict).
	WithTextCode("EMAIL_TAKEN").
	WithCode(goerrors.CodeConflict)

// ErrUserLockedOut is the temporary lockout produced by failed-password
// throttling.
var ErrUserLockedOut = goerrors.New("account is temporarily locked, try again later", goerrors.CategoryAuth).
	WithTextCode("USER_LOCKED_OUT").
	WithCode(goerrors.CodeBadRequest)

// ErrUserLockedOutByAdmin is the administrator-imposed lockout, recognized by
// a lockout end beyond adminLockoutHorizon.
var ErrUserLockedOutByAdmin = goerrors.New("account has been locked by an administrator, contact support", goerrors.CategoryAuth).
	WithTextCode("USER_LOCKED_OUT_ADMIN").
	WithCode(goerrors.CodeBadRequest)

// ErrAccountPendingDeletion is returned on login while a soft-deleted account
// is still inside its grace window. Revealing the state here is deliberate:
// it is what lets the owner self-reactivate.
var ErrAccountPendingDeletion = goerrors.New("account is pending deletion", goerrors.CategoryAuth).
	WithTextCode("ACCOUNT_PENDING_DELETION").
	WithCode(goerrors.CodeBadRequest)

// ErrIncorrectPassword is returned on a credential mismatch.
var ErrIncorrectPassword = goerrors.New("incorrect password", goerrors.CategoryAuth).
	WithTextCode("INCORRECT_PASSWORD").
	WithCode(goerrors.CodeBadRequest)

// ErrBadRefreshRequest covers every refresh failure: malformed, unsigned, or
// wrong-algorithm access tokens, unknown users, and refresh token mismatches.
// The cases are deliberately not distinguished so callers cannot learn which
// check failed.
var ErrBadRefreshRequest = goerrors.New("invalid refresh request", goerrors.CategoryAuth).
	WithTextCode("BAD_REFRESH_REQUEST").
	WithCode(goerrors.CodeBadRequest)

// ErrInvalidCode covers every verification-code failure: value mismatch,
// purpose mismatch, and expiry are collapsed into one message by design.
var ErrInvalidCode = goerrors.New("invalid or expired code", goerrors.CategoryValidation).
	WithTextCode("INVALID_CODE").
	WithCode(goerrors.CodeBadRequest)

// ErrNoEmptyString rejects empty passwords before they reach bcrypt.
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryValidation).
	WithTextCode("EMPTY_STRING").
	WithCode(goerrors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the low-level bcrypt mismatch; the lifecycle
// layer converts it into ErrIncorrectPassword.
var ErrMismatchedHashAndPassword = goerrors.New("password does not match", goerrors.CategoryAuth).
	WithTextCode("PASSWORD_MISMATCH").
	WithCode(goerrors.CodeBadRequest)
