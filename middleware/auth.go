package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AuthCookie is the cookie the token may be sent in instead of the header.
	AuthCookie = "auth_token"

	actorKey = "actor"
	emailKey = "userEmail"
)

// TokenVerifier is satisfied by *services.JWTService.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// Authenticate validates the JWT from the auth cookie or the Authorization
// header and stores the caller in the context.
func Authenticate(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookie)
		if err != nil || token == "" {
			authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorWithCode(c, "UNAUTHORIZED", "Authorization header required"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorWithCode(c, "UNAUTHORIZED", "Invalid authorization header format"))
				return
			}
			token = parts[1]
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			log.Debug("invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorWithCode(c, "UNAUTHORIZED", "Invalid or expired token"))
			return
		}
		actor, err := claims.Actor()
		if err != nil {
			log.Warn("token with malformed subject", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorWithCode(c, "UNAUTHORIZED", "Invalid or expired token"))
			return
		}

		c.Set(actorKey, actor)
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorWithCode(c, "UNAUTHORIZED", "Unauthorized"))
			return
		}
		if !slices.Contains(roles, actor.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorWithCode(c, "FORBIDDEN", "Forbidden - insufficient role"))
			return
		}
		c.Next()
	}
}

func ActorFromContext(c *gin.Context) (services.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return services.Actor{}, false
	}
	actor, ok := v.(services.Actor)
	return actor, ok
}

func EmailFromContext(c *gin.Context) string {
	return c.GetString(emailKey)
}
