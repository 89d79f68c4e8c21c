package routes

import (
	"github.com/gin-gonic/gin"

	"users-api/internal/controllers"
	"users-api/internal/middleware"
	"users-api/internal/service"
)

// Dependencies groups what the routes need
type Dependencies struct {
	Provisioner middleware.Acquirer
	Credentials service.CredentialService
	Services    service.Factory
	ServiceName string
}

// Setup registers every route on router
func Setup(router *gin.Engine, deps Dependencies) {
	authController := controllers.NewAuthController(deps.Services)
	userController := controllers.NewUserController(deps.Services)
	healthController := controllers.NewHealthController(deps.ServiceName)

	// The token is checked before a connection is opened, so rejected
	// requests never reach the database.
	requireAuth := middleware.AuthMiddleware(deps.Credentials)
	withDB := middleware.DatabaseSession(deps.Provisioner)

	// Health check endpoint (no database)
	router.GET("/", healthController.Check)

	auth := router.Group("/auth")
	{
		auth.POST("/login", withDB, authController.Login)
		auth.POST("/register", withDB, authController.Register)
	}

	api := router.Group("/api")
	{
		api.GET("/users", requireAuth, withDB, userController.ListUsers)
		api.POST("/users", withDB, userController.CreateUser)
		api.GET("/users/:id", requireAuth, withDB, userController.GetUser)
		api.DELETE("/users/:id", requireAuth, withDB, userController.DeleteUser)
	}
}
