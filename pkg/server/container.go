package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/config"
	"amplify-backend-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *logrus.Logger
	GreetingService services.GreetingService
	TodoService     services.TodoService

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	}

	serviceConfig := &services.ServiceConfig{
		FunctionName: cfg.Function.Name,
		Logger:       logger,
	}

	serviceContainer, err := services.NewServiceContainer(serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	container := &Container{
		Config:          cfg,
		Logger:          logger,
		GreetingService: serviceContainer.GreetingService,
		TodoService:     serviceContainer.TodoService,
		services:        serviceContainer,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	return nil
}
