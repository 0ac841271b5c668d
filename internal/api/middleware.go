package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vets2tech/onboard/internal/account"
	"github.com/vets2tech/onboard/internal/errors"
)

const claimsKey = "auth.claims"

// AuthRequired verifies the bearer token and stashes the claims in the
// request context.
func AuthRequired(tokens *account.TokenSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			e := errors.New(errors.CodeUnauthenticated, errors.WithMessagef("missing bearer token"))
			c.AbortWithStatusJSON(e.HTTPStatusCode(), e)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			e := errors.Convert(err)
			c.AbortWithStatusJSON(e.HTTPStatusCode(), e)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminRequired rejects non-admin callers. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := Claims(c); claims == nil || !claims.Admin {
			e := errors.New(errors.CodePermissionDenied, errors.WithMessagef("admin access required"))
			c.AbortWithStatusJSON(e.HTTPStatusCode(), e)
			return
		}

		c.Next()
	}
}

// Claims returns the verified token claims, or nil outside an authenticated
// route.
func Claims(c *gin.Context) *account.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}

	claims, _ := v.(*account.Claims)
	return claims
}
