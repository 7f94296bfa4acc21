package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ServiceConfig holds configuration needed to build services
type ServiceConfig struct {
	FunctionName string
	Logger       logrus.FieldLogger
}

// NewServiceContainer creates all services with their dependencies wired
func NewServiceContainer(cfg *ServiceConfig) (*ServiceContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("service config cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &ServiceContainer{
		GreetingService: NewGreetingService(cfg.FunctionName, logger),
		TodoService:     NewTodoService(logger),
	}, nil
}

// Close releases resources held by services. The fabricating services hold
// none, but the container keeps the lifecycle hook so storage-backed
// implementations can plug in later.
func (c *ServiceContainer) Close() error {
	return nil
}
