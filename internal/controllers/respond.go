package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/customerrors"
	"users-api/internal/middleware"
	"users-api/internal/repository"
)

var errNoSession = errors.New("database session not available")

// respondError writes err as {"detail": ...} with the status its type maps to.
// Unexpected errors become a 500 carrying the raw message.
func respondError(c *gin.Context, err error) {
	status := customerrors.GetStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"detail": customerrors.GetMessage(err),
	})
}

// bindJSON decodes the body into req and answers 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail":  customerrors.ErrInvalidRequestBody.Message,
			"details": err.Error(),
		})
		return false
	}
	return true
}

// connection returns the request-scoped handle opened by middleware.DatabaseSession
func connection(c *gin.Context) (repository.DBTX, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, errNoSession)
		return nil, false
	}
	return session.DB(), true
}
