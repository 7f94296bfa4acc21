package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"amplify-backend-api/internal/config"
	"amplify-backend-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	GreetingService services.GreetingService
	TodoService     services.TodoService
	Logger          logrus.FieldLogger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	// Create handlers
	helloHandler := NewHelloHandler(cfg.GreetingService, cfg.Logger)
	todoHandler := NewTodoHandler(cfg.TodoService, cfg.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "amplify-backend-api",
			"version": "1.0.0",
			"mode":    config.GetDeploymentMode(),
		})
	})

	// Greeting routes
	hello := router.Group("/hello")
	{
		hello.GET("", helloHandler.GetGreeting)
		hello.POST("", helloHandler.PostGreeting)
	}

	// Todo routes
	todos := router.Group("/todos")
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
