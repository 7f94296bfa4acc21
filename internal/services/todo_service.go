package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/models"
)

// todoService implements the TodoService interface with fabricated data.
// No storage is attached; every operation builds its result in memory and
// the result is discarded after the response is written.
type todoService struct {
	logger    logrus.FieldLogger
	validator *validator.Validate
}

// NewTodoService creates a new todo service instance
func NewTodoService(logger logrus.FieldLogger) TodoService {
	return &todoService{
		logger:    logger,
		validator: validator.New(),
	}
}

// ListTodos returns the fixed mock todo list
func (s *todoService) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	todos := []*models.Todo{
		{
			ID:        "1",
			Content:   "First todo",
			IsDone:    false,
			CreatedAt: models.PlaceholderCreatedAt,
			UpdatedAt: models.PlaceholderCreatedAt,
		},
		{
			ID:        "2",
			Content:   "Second todo",
			IsDone:    true,
			CreatedAt: models.PlaceholderCreatedAt,
			UpdatedAt: models.PlaceholderCreatedAt,
		},
	}

	s.logger.WithField("count", len(todos)).Debug("Listed todos")

	return todos, nil
}

// CreateTodo validates the request and fabricates a new todo item
func (s *todoService) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error) {
	if req == nil {
		return nil, fmt.Errorf("create todo request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("validation failed: content is required and must be a non-empty string")
	}

	todo := models.NewTodo(req.Content)
	todo.IsDone = req.IsDone

	if err := todo.Validate(); err != nil {
		return nil, fmt.Errorf("todo validation failed: %w", err)
	}

	s.logger.WithField("todo_id", todo.ID).Info("Todo created")

	return todo, nil
}

// UpdateTodo fabricates an updated item echoing the supplied fields. The
// creation timestamp is a fixed historical value because there is no store
// to read the original item from.
func (s *todoService) UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error) {
	if id == "" {
		return nil, fmt.Errorf("validation failed: todo ID is required")
	}

	if req == nil {
		return nil, fmt.Errorf("validation failed: update todo request cannot be nil")
	}

	todo := &models.Todo{
		ID:        id,
		Content:   "Updated todo",
		IsDone:    false,
		CreatedAt: models.PlaceholderCreatedAt,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if req.Content != nil {
		todo.Content = *req.Content
	}
	if req.IsDone != nil {
		todo.IsDone = *req.IsDone
	}

	s.logger.WithField("todo_id", id).Info("Todo updated")

	return todo, nil
}

// DeleteTodo returns a confirmation message naming the identifier
func (s *todoService) DeleteTodo(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("validation failed: todo ID is required")
	}

	s.logger.WithField("todo_id", id).Info("Todo deleted")

	return fmt.Sprintf("Todo %s deleted successfully", id), nil
}
