package account_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vets2tech/onboard/internal/account"
	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
)

func TestTokenSigner_SignVerify(t *testing.T) {
	t.Parallel()

	ts := account.NewTokenSigner("test-secret", time.Hour)

	token, err := ts.Sign(domain.User{
		Email:    "student@example.com",
		FullName: "Sam Student",
		Admin:    true,
	})
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "Sam Student", claims.FullName)
	assert.True(t, claims.Admin)
}

func TestTokenSigner_Verify(t *testing.T) {
	tests := map[string]struct {
		arrange func() string
	}{
		"an expired token should be rejected": {
			arrange: func() string {
				ts := account.NewTokenSigner("test-secret", time.Nanosecond)
				token, err := ts.Sign(domain.User{Email: "student@example.com"})
				require.NoError(t, err)
				return token
			},
		},

		"a token signed with another secret should be rejected": {
			arrange: func() string {
				other := account.NewTokenSigner("other-secret", time.Hour)
				token, err := other.Sign(domain.User{Email: "student@example.com"})
				require.NoError(t, err)
				return token
			},
		},

		"a token without an expiry should be rejected": {
			arrange: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": "student@example.com",
				}).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return token
			},
		},

		"a token without a subject should be rejected": {
			arrange: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"exp": time.Now().Add(time.Hour).Unix(),
				}).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return token
			},
		},

		"an unsigned token should be rejected": {
			arrange: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub": "student@example.com",
					"exp": time.Now().Add(time.Hour).Unix(),
				}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},

		"garbage should be rejected": {
			arrange: func() string {
				return "not.a.token"
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ts := account.NewTokenSigner("test-secret", time.Hour)
			claims, err := ts.Verify(tt.arrange())
			assert.Nil(t, claims)
			assert.True(t, errors.IsCode(err, errors.CodeUnauthenticated))
		})
	}
}
