package accounts_test

import (
	"context"
	"testing"
	"time"

	accounts "github.com/garbo-works/go-accounts"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "Sup3rSecret!pwd")
	user.Roles = []string{"user", "admin"}
	env.store.add(user)

	t.Run("Mints a signed access token with session claims", func(t *testing.T) {
		pair, err := env.tokens.CreateToken(ctx, user, true)
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		claims := &accounts.SessionClaims{}
		parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(tok *jwt.Token) (any, error) {
			return []byte("test-signing-key"), nil
		}, jwt.WithTimeFunc(env.clock.Now))
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		assert.Equal(t, "test-issuer", claims.Issuer)
		assert.Contains(t, claims.Audience, "test:audience")
		assert.Equal(t, "alice@example.com", claims.Name)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Contains(t, claims.Roles, "admin")
		assert.NotEmpty(t, claims.ID, "every token carries a jti")

		expiresAt := claims.ExpiresAt.Time
		assert.Equal(t, env.clock.Now().Add(15*time.Minute), expiresAt)
	})

	t.Run("Persists the refresh token with a full session expiry", func(t *testing.T) {
		pair, err := env.tokens.CreateToken(ctx, user, true)
		require.NoError(t, err)

		stored := env.store.get(user.ID)
		assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
		assert.Equal(t, env.clock.Now().Add(7*24*time.Hour), stored.RefreshTokenExpiry)
	})

	t.Run("Does not extend the session when populateExpiry is false", func(t *testing.T) {
		first, err := env.tokens.CreateToken(ctx, user, true)
		require.NoError(t, err)
		firstExpiry := env.store.get(user.ID).RefreshTokenExpiry

		env.clock.Advance(time.Hour)

		user = env.store.get(user.ID)
		second, err := env.tokens.CreateToken(ctx, user, false)
		require.NoError(t, err)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

		stored := env.store.get(user.ID)
		assert.Equal(t, firstExpiry, stored.RefreshTokenExpiry, "expiry should be untouched")
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testEnv, *accounts.User, *accounts.TokenPair) {
		env := newTestEnv()
		user := env.seedUser("bob@example.com", "Sup3rSecret!pwd")
		pair, err := env.tokens.CreateToken(ctx, user, true)
		require.NoError(t, err)
		return env, user, pair
	}

	t.Run("Rotates the refresh token", func(t *testing.T) {
		env, user, pair := setup(t)

		next, err := env.tokens.Refresh(ctx, *pair)
		require.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
		assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

		stored := env.store.get(user.ID)
		assert.Equal(t, next.RefreshToken, stored.RefreshToken)
		assert.Equal(t, pair.RefreshToken, stored.PreviousRefreshToken)
		require.NotNil(t, stored.PreviousRefreshTokenExpiry)
		assert.Equal(t, env.clock.Now().Add(time.Minute), *stored.PreviousRefreshTokenExpiry)
	})

	t.Run("Duplicate refresh inside the grace window converges", func(t *testing.T) {
		env, user, pair := setup(t)

		first, err := env.tokens.Refresh(ctx, *pair)
		require.NoError(t, err)

		env.clock.Advance(30 * time.Second)

		// Same original pair again, as a client that never saw the first
		// response would retry.
		second, err := env.tokens.Refresh(ctx, *pair)
		require.NoError(t, err)
		assert.Equal(t, first.RefreshToken, second.RefreshToken, "no second rotation")
		assert.NotEmpty(t, second.AccessToken)

		stored := env.store.get(user.ID)
		assert.Equal(t, first.RefreshToken, stored.RefreshToken)
		assert.Equal(t, pair.RefreshToken, stored.PreviousRefreshToken, "grace slot untouched")
	})

	t.Run("Grace window closes after its expiry", func(t *testing.T) {
		env, _, pair := setup(t)

		_, err := env.tokens.Refresh(ctx, *pair)
		require.NoError(t, err)

		env.clock.Advance(61 * time.Second)

		_, err = env.tokens.Refresh(ctx, *pair)
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Expired refresh token is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		env.clock.Advance(7*24*time.Hour + time.Minute)

		_, err := env.tokens.Refresh(ctx, *pair)
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Unknown refresh token value is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		_, err := env.tokens.Refresh(ctx, accounts.TokenPair{
			AccessToken:  pair.AccessToken,
			RefreshToken: "not-the-stored-token",
		})
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Tampered access token is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		forged := signTestToken(t, jwt.SigningMethodHS256, []byte("wrong-key"), "test-issuer", "bob@example.com")

		_, err := env.tokens.Refresh(ctx, accounts.TokenPair{
			AccessToken:  forged,
			RefreshToken: pair.RefreshToken,
		})
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Access token signed with another algorithm is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		forged := signTestToken(t, jwt.SigningMethodHS512, []byte("test-signing-key"), "test-issuer", "bob@example.com")

		_, err := env.tokens.Refresh(ctx, accounts.TokenPair{
			AccessToken:  forged,
			RefreshToken: pair.RefreshToken,
		})
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Access token from another issuer is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		forged := signTestToken(t, jwt.SigningMethodHS256, []byte("test-signing-key"), "other-issuer", "bob@example.com")

		_, err := env.tokens.Refresh(ctx, accounts.TokenPair{
			AccessToken:  forged,
			RefreshToken: pair.RefreshToken,
		})
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Token for an unknown user is rejected", func(t *testing.T) {
		env, _, pair := setup(t)

		forged := signTestToken(t, jwt.SigningMethodHS256, []byte("test-signing-key"), "test-issuer", "ghost@example.com")

		_, err := env.tokens.Refresh(ctx, accounts.TokenPair{
			AccessToken:  forged,
			RefreshToken: pair.RefreshToken,
		})
		assert.ErrorIs(t, err, accounts.ErrBadRefreshRequest)
	})

	t.Run("Expired access token still refreshes", func(t *testing.T) {
		env, _, pair := setup(t)

		// Past the access token lifetime but well inside the refresh lifetime.
		env.clock.Advance(2 * time.Hour)

		next, err := env.tokens.Refresh(ctx, *pair)
		require.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
	})
}

func TestRevokeTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	user := env.seedUser("carol@example.com", "Sup3rSecret!pwd")

	pair, err := env.tokens.CreateToken(ctx, user, true)
	require.NoError(t, err)

	// Rotate once so the grace slot is populated.
	_, err = env.tokens.Refresh(ctx, *pair)
	require.NoError(t, err)

	require.NoError(t, env.tokens.RevokeTokens(ctx, "carol@example.com"))

	stored := env.store.get(user.ID)
	assert.Empty(t, stored.RefreshToken)
	assert.True(t, stored.RefreshTokenExpiry.IsZero())

	t.Run("Grace slot survives revocation", func(t *testing.T) {
		stored := env.store.get(user.ID)
		assert.Equal(t, pair.RefreshToken, stored.PreviousRefreshToken)
		require.NotNil(t, stored.PreviousRefreshTokenExpiry)
		assert.True(t, stored.PreviousRefreshTokenExpiry.After(env.clock.Now()))
	})

	t.Run("Unknown username", func(t *testing.T) {
		err := env.tokens.RevokeTokens(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, accounts.ErrUserNotFound)
	})
}

func signTestToken(t *testing.T, method jwt.SigningMethod, key []byte, issuer, name string) string {
	t.Helper()

	claims := &accounts.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Audience: jwt.ClaimStrings{"test:audience"},
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Name: name,
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}
