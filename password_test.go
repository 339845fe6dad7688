package accounts_test

import (
	"testing"

	accounts "github.com/garbo-works/go-accounts"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	t.Run("Accepts a compliant password", func(t *testing.T) {
		assert.NoError(t, accounts.ValidatePassword("Sup3rSecret!pwd"))
	})

	t.Run("Reports every violated rule at once", func(t *testing.T) {
		err := accounts.ValidatePassword("short")
		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)

		assert.Contains(t, errs, "length")
		assert.Contains(t, errs, "digit")
		assert.Contains(t, errs, "uppercase")
		assert.Contains(t, errs, "symbol")
		assert.NotContains(t, errs, "lowercase")
	})

	t.Run("Missing digit only", func(t *testing.T) {
		err := accounts.ValidatePassword("NoDigitsHere!!")
		require.Error(t, err)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "digit")
	})

	t.Run("Rejects an overlong password", func(t *testing.T) {
		long := "Aa1!"
		for len(long) < 200 {
			long += "abcdefgh"
		}
		assert.Error(t, accounts.ValidatePassword(long))
	})
}

func TestHashPassword(t *testing.T) {
	t.Run("Round trips", func(t *testing.T) {
		hash, err := accounts.HashPassword("Sup3rSecret!pwd")
		require.NoError(t, err)
		assert.NoError(t, accounts.ComparePasswordAndHash("Sup3rSecret!pwd", hash))
	})

	t.Run("Mismatch", func(t *testing.T) {
		hash, err := accounts.HashPassword("Sup3rSecret!pwd")
		require.NoError(t, err)

		err = accounts.ComparePasswordAndHash("other-password", hash)
		assert.ErrorIs(t, err, accounts.ErrMismatchedHashAndPassword)
	})

	t.Run("Empty password", func(t *testing.T) {
		_, err := accounts.HashPassword("")
		assert.ErrorIs(t, err, accounts.ErrNoEmptyString)
	})
}
