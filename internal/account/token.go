package account

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
)

const defaultTokenTTL = 24 * time.Hour

// TokenSigner issues and verifies the HS256 bearer tokens used by the API.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Claims is the verified identity carried by a token.
type Claims struct {
	Email    string
	FullName string
	Admin    bool
}

func (ts *TokenSigner) Sign(u domain.User) (string, error) {
	now := ts.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.Email,
		"name":  u.FullName,
		"admin": u.Admin,
		"iat":   now.Unix(),
		"exp":   now.Add(ts.ttl).Unix(),
	})

	signed, err := t.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (ts *TokenSigner) Verify(token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.New(errors.CodeUnauthenticated,
			errors.WithMessagef("invalid token"),
			errors.WithCause(err))
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New(errors.CodeUnauthenticated, errors.WithMessagef("invalid token claims"))
	}

	c := &Claims{}
	c.Email, _ = mc["sub"].(string)
	c.FullName, _ = mc["name"].(string)
	c.Admin, _ = mc["admin"].(bool)
	if c.Email == "" {
		return nil, errors.New(errors.CodeUnauthenticated, errors.WithMessagef("token missing subject"))
	}

	return c, nil
}
