package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/models"
	"shoe-store/utils"
)

const (
	// SessionCookie carries the signed identity token.
	SessionCookie = "session"

	identityKey = "identity"
)

// SessionMiddleware resolves the cached identity from the session cookie and
// stores it in the request context. Requests without a valid cookie pass
// through anonymously; enforcement is left to RequireRole or the handler.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, &models.Identity{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireRole gates a route group on an exact role match, redirecting
// everything else to the storefront root. This is a navigation convenience
// for the admin subtree, not a security boundary: the cookie is minted and
// checked by this gateway alone, and the backend must authorize every call
// on its own.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil || identity.Role != role {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the request identity, or nil when unauthenticated.
func IdentityFrom(c *gin.Context) *models.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
