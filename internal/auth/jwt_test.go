package auth

import (
	"testing"
	"time"

	"rental_quotes/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	caller := entities.Caller{UserID: "u-1", Email: "desk@rental.test", IsAdmin: true}

	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateJWT(caller, secret, time.Hour)
		require.NoError(t, err)

		claims, err := ValidateJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, caller, claims.Caller())
		assert.Equal(t, "u-1", claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(caller, secret, time.Hour)
		require.NoError(t, err)
		_, err = ValidateJWT(token, "other")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT(caller, secret, -time.Minute)
		require.NoError(t, err)
		_, err = ValidateJWT(token, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token is refused", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID:           "u-1",
			IsAdmin:          true,
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ValidateJWT(raw, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := GenerateJWT(caller, "", time.Hour)
		assert.Error(t, err)
	})
}
