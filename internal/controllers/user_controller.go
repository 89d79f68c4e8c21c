package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/models"
	"users-api/internal/service"
)

const userDeletedMessage = "User deleted successfully"

type UserController struct {
	services service.Factory
}

func NewUserController(services service.Factory) *UserController {
	return &UserController{
		services: services,
	}
}

// ListUsers handles GET /api/users
func (uc *UserController) ListUsers(c *gin.Context) {
	db, ok := connection(c)
	if !ok {
		return
	}

	users, err := uc.services.Users(db).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/users. It is unauthenticated and
// creates an account without a password.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	db, ok := connection(c)
	if !ok {
		return
	}

	user, err := uc.services.Users(db).Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /api/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	db, ok := connection(c)
	if !ok {
		return
	}

	user, err := uc.services.Users(db).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	db, ok := connection(c)
	if !ok {
		return
	}

	user, err := uc.services.Users(db).DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteUserResponse{
		Detail: userDeletedMessage,
		User:   *user,
	})
}
