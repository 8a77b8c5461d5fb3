package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			token, err := NewToken("secret", alg, "user-123", time.Hour)
			require.NoError(t, err)

			sub, err := VerifyToken("secret", token)
			require.NoError(t, err)
			assert.Equal(t, "user-123", sub)
		})
	}
}

func TestVerifyTokenRejections(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewToken("secret", "HS256", "user-123", time.Hour)
		require.NoError(t, err)

		_, err = VerifyToken("other-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewToken("secret", "HS256", "user-123", -time.Minute)
		require.NoError(t, err)

		_, err = VerifyToken("secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := VerifyToken("secret", "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenUnknownAlgorithm(t *testing.T) {
	_, err := NewToken("secret", "HS1024", "user-123", time.Hour)
	assert.Error(t, err)
}
