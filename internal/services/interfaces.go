package services

import (
	"context"

	"amplify-backend-api/internal/models"
)

// GreetingService defines the interface for greeting business logic operations
type GreetingService interface {
	Greet(ctx context.Context, req *GreetRequest) (*models.GreetingResponse, error)
}

// TodoService defines the interface for todo business logic operations.
// The shipped implementation fabricates data in memory; a storage-backed
// implementation can replace it without touching the handlers.
type TodoService interface {
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) (string, error)
}

// GreetRequest carries the inputs for a greeting
type GreetRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// CreateTodoRequest represents the request to create a todo
type CreateTodoRequest struct {
	Content string `json:"content" validate:"required"`
	IsDone  bool   `json:"isDone"`
}

// UpdateTodoRequest represents the request to update a todo
type UpdateTodoRequest struct {
	Content *string `json:"content,omitempty"`
	IsDone  *bool   `json:"isDone,omitempty"`
}

// ServiceContainer holds all service instances
type ServiceContainer struct {
	GreetingService GreetingService
	TodoService     TodoService
}
