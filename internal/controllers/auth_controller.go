package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/models"
	"users-api/internal/service"
)

type AuthController struct {
	services service.Factory
}

func NewAuthController(services service.Factory) *AuthController {
	return &AuthController{
		services: services,
	}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	db, ok := connection(c)
	if !ok {
		return
	}

	user, err := ac.services.Auth(db).Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	db, ok := connection(c)
	if !ok {
		return
	}

	response, err := ac.services.Auth(db).Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
