package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"users-api/internal/config"
	"users-api/internal/database"
	"users-api/internal/jwt"
	"users-api/internal/routes"
	"users-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL is empty; every data request will fail")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("Warning: signing tokens with the default JWT secret")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := newRouter(cfg)

	// Running inside AWS Lambda: every invocation is one API Gateway event.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := ginadapter.New(router)
		log.Println("Starting Lambda handler")
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	serve(router, ":"+cfg.Port)
}

func newRouter(cfg *config.Config) *gin.Engine {
	// Per-request connections; nothing is opened at startup
	provisioner := database.NewProvisioner(
		cfg.DatabaseURL,
		database.WithConnectTimeout(cfg.DBConnectTimeout),
	)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.TokenTTL())

	// Initialize services
	credentials := service.NewCredentialService(jwtService)
	services := service.NewFactory(credentials, service.NewTimestampIDGenerator())

	// Create a Gin router
	router := gin.Default()
	routes.Setup(router, routes.Dependencies{
		Provisioner: provisioner,
		Credentials: credentials,
		Services:    services,
		ServiceName: cfg.ServiceName,
	})
	return router
}

func serve(handler http.Handler, addr string) {
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}

	case <-shutdown:
		log.Println("Starting graceful shutdown...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Could not gracefully shutdown the server: %v", err)
			if err := server.Close(); err != nil {
				log.Printf("Could not close server: %v", err)
			}
		}
		log.Println("Server gracefully stopped")
	}
}
