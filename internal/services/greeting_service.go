package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/models"
)

// DefaultGreetingName is used when no name is supplied
const DefaultGreetingName = "World"

// greetingService implements the GreetingService interface
type greetingService struct {
	functionName string
	logger       logrus.FieldLogger
}

// NewGreetingService creates a new greeting service instance. The function
// name is injected explicitly rather than read from the process environment.
func NewGreetingService(functionName string, logger logrus.FieldLogger) GreetingService {
	return &greetingService{
		functionName: functionName,
		logger:       logger,
	}
}

// Greet formats a greeting for the supplied name, appending the optional
// custom message when present.
func (s *greetingService) Greet(ctx context.Context, req *GreetRequest) (*models.GreetingResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("greet request cannot be nil")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultGreetingName
	}

	message := fmt.Sprintf("Hello, %s!", name)
	if custom := strings.TrimSpace(req.Message); custom != "" {
		message = message + " " + custom
	}

	s.logger.WithFields(logrus.Fields{
		"function": s.functionName,
		"name":     name,
	}).Debug("Greeting generated")

	return &models.GreetingResponse{
		Message:   message,
		Function:  s.functionName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
