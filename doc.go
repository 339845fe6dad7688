// Package accounts implements session-token lifecycle management and the
// account state machine for the Garbo admin backend.
//
// Token lifecycle:
//   - TokenService issues short-lived HS256 access tokens paired with opaque
//     rotating refresh tokens. Refresh calls rotate the refresh token and keep
//     the rotated-out value alive in a one-slot grace window so duplicate or
//     racing refresh requests converge on the latest pair instead of failing.
//   - RevokeTokens clears the current refresh token on logout. The grace slot
//     is left in place; see the RevokeTokens docs for the implications.
//
// Account lifecycle:
//   - Accounts owns the account state machine (unconfirmed, active, locked
//     out, soft deleted) plus every time-boxed verification-code flow: email
//     confirmation, password reset, password update, email change, and
//     reactivation of soft-deleted accounts.
//   - A single verification slot (code, expiry, purpose) is shared by the
//     general-purpose flows, so starting a new flow silently replaces any
//     pending one. Email change uses its own slot and can run alongside.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter used by Accounts to
//     describe login, lockout, deletion, and reactivation events. Sinks run
//     best-effort (errors are logged) so you can forward to a database or
//     queue without blocking authentication.
//
// Persistence is a Bun-backed users repository; mail delivery goes through
// the Mailer interface and is always best-effort.
package accounts
