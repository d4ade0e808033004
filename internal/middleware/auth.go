package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/auth"
	"github.com/Wichtowski/whobought/internal/responses"
)

// identityKey is the gin context key holding the authenticated identity.
const identityKey = "identity"

// GetIdentity extracts the authenticated identity from the context.
// Returns nil on routes that did not pass through RequireAuth.
func GetIdentity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*auth.Identity)
	return ident
}

// RequireAuth validates the bearer token on every request and injects the
// resolved identity into the handler context. Absence or invalidity yields
// a 401 envelope; expired tokens are reported distinctly.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, auth.ErrMissingToken.Error())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, auth.ErrTokenInvalid.Error())
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, auth.ErrTokenExpired.Error())
				return
			}
			abortUnauthorized(c, auth.ErrTokenInvalid.Error())
			return
		}

		ident, err := auth.IdentityFromClaims(claims)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	responses.Error(c, http.StatusUnauthorized, message)
	c.Abort()
}
