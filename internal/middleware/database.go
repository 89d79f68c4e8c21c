package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/database"
)

// SessionKey is the gin context key holding the request's *database.Session
const SessionKey = "db_session"

// Acquirer opens a request-scoped connection. *database.Provisioner implements it.
type Acquirer interface {
	Acquire(ctx context.Context) (*database.Session, error)
}

// DatabaseSession opens one connection for the request and closes it once the
// rest of the chain returns, whether it succeeded, failed or panicked.
func DatabaseSession(provisioner Acquirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := provisioner.Acquire(c.Request.Context())
		if err != nil {
			log.Printf("Failed to acquire database connection for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": err.Error(),
			})
			return
		}
		defer func() {
			if err := session.Release(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}()

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession returns the session stored by DatabaseSession
func GetSession(c *gin.Context) (*database.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*database.Session)
	return session, ok
}
