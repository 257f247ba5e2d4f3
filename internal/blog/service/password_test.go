package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts mixed letters and digits", func(t *testing.T) {
		ok, err := ValidatePassword("abcdefg1")
		require.NoError(t, err)
		require.Equal(t, "abcdefg1", ok)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := ValidatePassword("abc1")
		require.ErrorIs(t, err, ErrPasswordTooShort)
		require.Equal(t, "must be at least 8 characters long", err.Error())
	})

	t.Run("length check wins over composition", func(t *testing.T) {
		// Short AND all-digits: only the length failure is reported.
		_, err := ValidatePassword("1234567")
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects digits only", func(t *testing.T) {
		_, err := ValidatePassword("12345678")
		require.ErrorIs(t, err, ErrPasswordWeakComposition)
		require.Equal(t, "must contain at least 1 digit and 1 letter", err.Error())
	})

	t.Run("rejects letters only", func(t *testing.T) {
		_, err := ValidatePassword("abcdefgh")
		require.ErrorIs(t, err, ErrPasswordWeakComposition)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		// Seven multi-byte runes plus a digit is still only eight runes.
		_, err := ValidatePassword("ééééééé1")
		require.NoError(t, err)
	})
}
