package accounts

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenPair is an access token plus the opaque refresh token that can renew
// it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService mints and rotates bearer-session credentials.
type TokenService interface {
	CreateToken(ctx context.Context, user *User, populateExpiry bool) (*TokenPair, error)
	Refresh(ctx context.Context, pair TokenPair) (*TokenPair, error)
	RevokeTokens(ctx context.Context, username string) error
}

// TokenStore is the slice of the user store the token service needs.
type TokenStore interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
}

// HMACTokenService implements TokenService with HS256-signed access tokens
// and random opaque refresh tokens persisted on the user record.
type HMACTokenService struct {
	cfg    Config
	store  TokenStore
	logger Logger
	now    func() time.Time
}

var _ TokenService = (*HMACTokenService)(nil)

// TokenServiceOption customizes token service construction.
type TokenServiceOption func(*HMACTokenService)

// WithTokenLogger overrides the logger used by the token service.
func WithTokenLogger(logger Logger) TokenServiceOption {
	return func(ts *HMACTokenService) {
		if logger != nil {
			ts.logger = logger
		}
	}
}

// WithTokenClock injects a custom clock (useful for tests).
func WithTokenClock(clock func() time.Time) TokenServiceOption {
	return func(ts *HMACTokenService) {
		if clock != nil {
			ts.now = clock
		}
	}
}

// NewTokenService creates a token service bound to the given signing
// configuration and user store.
func NewTokenService(cfg Config, store TokenStore, opts ...TokenServiceOption) *HMACTokenService {
	ts := &HMACTokenService{
		cfg:    cfg.withDefaults(),
		store:  store,
		logger: defLogger{},
		now:    time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(ts)
		}
	}

	return ts
}

// CreateToken mints a fresh token pair for the user and persists the new
// refresh token. When populateExpiry is set the refresh expiry is extended to
// a full session; callers pass false only when reissuing claims without
// extending the session (e.g. after a confirmed email change).
func (ts *HMACTokenService) CreateToken(ctx context.Context, user *User, populateExpiry bool) (*TokenPair, error) {
	access, err := ts.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	user.RefreshToken = refresh
	if populateExpiry {
		user.RefreshTokenExpiry = ts.now().Add(ts.cfg.RefreshExpiration)
	}

	if _, err := ts.store.Save(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist refresh token")
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges an expired access token plus refresh token for a new
// pair.
//
// The common case rotates: the current refresh token moves into the previous
// slot with a short grace expiry and a brand-new token becomes current. When
// the presented refresh token matches the previous slot inside its grace
// window, the call is a duplicate of a refresh whose response the client never
// saw; no second rotation happens and the already-rotated current token is
// returned so the client converges on the latest pair. Everything else fails
// with ErrBadRefreshRequest.
func (ts *HMACTokenService) Refresh(ctx context.Context, pair TokenPair) (*TokenPair, error) {
	claims, err := ts.claimsFromExpiredToken(pair.AccessToken)
	if err != nil {
		ts.logger.Warn("refresh rejected: access token validation failed: %v", err)
		return nil, ErrBadRefreshRequest
	}

	user, err := ts.store.GetByUsername(ctx, claims.Name)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrBadRefreshRequest
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during token refresh")
	}

	now := ts.now()

	if pair.RefreshToken != user.RefreshToken || user.RefreshToken == "" {
		if ts.matchesGraceSlot(user, pair.RefreshToken, now) {
			access, err := ts.signAccessToken(user)
			if err != nil {
				return nil, err
			}
			return &TokenPair{AccessToken: access, RefreshToken: user.RefreshToken}, nil
		}
		return nil, ErrBadRefreshRequest
	}

	if !user.RefreshTokenExpiry.After(now) {
		return nil, ErrBadRefreshRequest
	}

	refresh, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	graceExpiry := now.Add(ts.cfg.RefreshGracePeriod)
	user.PreviousRefreshToken = user.RefreshToken
	user.PreviousRefreshTokenExpiry = &graceExpiry
	user.RefreshToken = refresh

	if _, err := ts.store.Save(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist rotated refresh token")
	}

	access, err := ts.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RevokeTokens clears the user's current refresh token and its expiry. The
// previous-token grace slot is intentionally left untouched, which means a
// revoked session can still be resurrected through the grace path until that
// slot expires (at most RefreshGracePeriod after the last rotation).
func (ts *HMACTokenService) RevokeTokens(ctx context.Context, username string) error {
	user, err := ts.store.GetByUsername(ctx, username)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrUserNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during token revocation")
	}

	user.RefreshToken = ""
	user.RefreshTokenExpiry = time.Time{}

	if _, err := ts.store.Save(ctx, user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist token revocation")
	}

	return nil
}

func (ts *HMACTokenService) matchesGraceSlot(user *User, presented string, now time.Time) bool {
	if user.PreviousRefreshToken == "" || presented == "" {
		return false
	}
	if user.PreviousRefreshToken != presented {
		return false
	}
	return user.PreviousRefreshTokenExpiry != nil && user.PreviousRefreshTokenExpiry.After(now)
}

func (ts *HMACTokenService) signAccessToken(user *User) (string, error) {
	now := ts.now()

	var aud jwt.ClaimStrings
	if len(ts.cfg.Audience) > 0 {
		aud = make(jwt.ClaimStrings, len(ts.cfg.Audience))
		copy(aud, ts.cfg.Audience)
	}

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.cfg.Issuer,
			Subject:   user.ID.String(),
			Audience:  aud,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.cfg.TokenExpiration)),
		},
		Name:  user.Username,
		Roles: append([]string(nil), user.Roles...),
	}

	ensureTokenID(&claims.RegisteredClaims)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.cfg.SigningKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign access token")
	}

	return signed, nil
}

// claimsFromExpiredToken validates signature, signing algorithm, issuer, and
// audience of a presented access token while ignoring its expiry; the token
// is expected to be expired on a refresh call. Restricting the accepted
// algorithm guards against algorithm-confusion attacks.
func (ts *HMACTokenService) claimsFromExpiredToken(raw string) (*SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return ts.cfg.SigningKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrBadRefreshRequest
	}

	// Claims validation was skipped above to tolerate the expired exp, so
	// issuer and audience are enforced by hand.
	if ts.cfg.Issuer != "" && claims.Issuer != ts.cfg.Issuer {
		return nil, ErrBadRefreshRequest
	}
	if len(ts.cfg.Audience) > 0 && !audienceMatches(claims.Audience, ts.cfg.Audience) {
		return nil, ErrBadRefreshRequest
	}
	if claims.Name == "" {
		return nil, ErrBadRefreshRequest
	}

	return claims, nil
}

func audienceMatches(presented jwt.ClaimStrings, expected []string) bool {
	for _, want := range expected {
		for _, have := range presented {
			if have == want {
				return true
			}
		}
	}
	return false
}

// generateRefreshToken returns 32 bytes of crypto/rand entropy, base64
// encoded; the value is opaque to clients.
func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate refresh token")
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
