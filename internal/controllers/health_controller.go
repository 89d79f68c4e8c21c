package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/models"
)

type HealthController struct {
	serviceName string
}

func NewHealthController(serviceName string) *HealthController {
	return &HealthController{
		serviceName: serviceName,
	}
}

// Check handles GET / and never touches the database
func (hc *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: hc.serviceName,
	})
}
