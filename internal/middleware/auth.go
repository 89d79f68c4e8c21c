package middleware

import (
	"github.com/gin-gonic/gin"

	"users-api/internal/customerrors"
	"users-api/internal/service"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token.
// Missing or malformed headers get 401, bad or expired tokens get 403.
func AuthMiddleware(credentials service.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := credentials.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(customerrors.GetStatus(err), gin.H{
				"detail": customerrors.GetMessage(err),
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
