package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TestGreetDefaultName verifies the default name is used when none is given
func TestGreetDefaultName(t *testing.T) {
	svc := NewGreetingService("hello", testLogger())

	resp, err := svc.Greet(context.Background(), &GreetRequest{})
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}

	if !strings.Contains(resp.Message, "World") {
		t.Errorf("Expected default name 'World' in message, got '%s'", resp.Message)
	}
	if resp.Function != "hello" {
		t.Errorf("Expected function name 'hello', got '%s'", resp.Function)
	}
}

// TestGreetContainsName verifies the supplied name appears verbatim
func TestGreetContainsName(t *testing.T) {
	svc := NewGreetingService("hello", testLogger())

	names := []string{"Alice", "Bob Smith", "O'Brien", "José", "世界"}
	for _, name := range names {
		resp, err := svc.Greet(context.Background(), &GreetRequest{Name: name})
		if err != nil {
			t.Fatalf("Greet(%q) failed: %v", name, err)
		}
		if !strings.Contains(resp.Message, name) {
			t.Errorf("Expected name %q verbatim in message, got '%s'", name, resp.Message)
		}
	}
}

// TestGreetCustomMessage verifies the custom message is combined with the greeting
func TestGreetCustomMessage(t *testing.T) {
	svc := NewGreetingService("hello", testLogger())

	resp, err := svc.Greet(context.Background(), &GreetRequest{
		Name:    "Alice",
		Message: "Welcome back",
	})
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}

	if !strings.Contains(resp.Message, "Alice") {
		t.Errorf("Expected name in message, got '%s'", resp.Message)
	}
	if !strings.Contains(resp.Message, "Welcome back") {
		t.Errorf("Expected custom message in message, got '%s'", resp.Message)
	}
}

// TestGreetNilRequest verifies a nil request is rejected
func TestGreetNilRequest(t *testing.T) {
	svc := NewGreetingService("hello", testLogger())

	if _, err := svc.Greet(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

// TestListTodos verifies the fixed mock list
func TestListTodos(t *testing.T) {
	svc := NewTodoService(testLogger())

	todos, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}

	if len(todos) != 2 {
		t.Fatalf("Expected 2 todos, got %d", len(todos))
	}

	for _, todo := range todos {
		if todo.ID == "" || todo.Content == "" {
			t.Errorf("Mock todo missing fields: %+v", todo)
		}
	}
}

// TestCreateTodo verifies creation with valid content
func TestCreateTodo(t *testing.T) {
	svc := NewTodoService(testLogger())

	todo, err := svc.CreateTodo(context.Background(), &CreateTodoRequest{Content: "Write tests"})
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	if todo.Content != "Write tests" {
		t.Errorf("Expected content 'Write tests', got '%s'", todo.Content)
	}
	if todo.ID == "" {
		t.Error("Created todo should have a non-empty ID")
	}
	if todo.IsDone {
		t.Error("Created todo should default to not done")
	}

	// Repeated creates must yield distinct identifiers
	other, err := svc.CreateTodo(context.Background(), &CreateTodoRequest{Content: "Write tests"})
	if err != nil {
		t.Fatalf("Second CreateTodo failed: %v", err)
	}
	if other.ID == todo.ID {
		t.Errorf("Expected unique IDs across calls, both were '%s'", todo.ID)
	}
}

// TestCreateTodoValidation verifies empty/missing content is rejected
func TestCreateTodoValidation(t *testing.T) {
	svc := NewTodoService(testLogger())

	cases := []struct {
		name string
		req  *CreateTodoRequest
	}{
		{"nil request", nil},
		{"missing content", &CreateTodoRequest{}},
		{"whitespace content", &CreateTodoRequest{Content: "   "}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateTodo(context.Background(), tc.req); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestUpdateTodo verifies the fabricated update echoes supplied fields
func TestUpdateTodo(t *testing.T) {
	svc := NewTodoService(testLogger())

	content := "Updated content"
	done := true
	todo, err := svc.UpdateTodo(context.Background(), "todo-123", &UpdateTodoRequest{
		Content: &content,
		IsDone:  &done,
	})
	if err != nil {
		t.Fatalf("UpdateTodo failed: %v", err)
	}

	if todo.ID != "todo-123" {
		t.Errorf("Expected ID 'todo-123', got '%s'", todo.ID)
	}
	if todo.Content != content {
		t.Errorf("Expected content '%s', got '%s'", content, todo.Content)
	}
	if !todo.IsDone {
		t.Error("Expected IsDone to echo supplied value")
	}
	if todo.CreatedAt == todo.UpdatedAt {
		t.Error("Expected fresh update timestamp distinct from the historical creation timestamp")
	}
}

// TestUpdateTodoRequiresID verifies update without an ID fails
func TestUpdateTodoRequiresID(t *testing.T) {
	svc := NewTodoService(testLogger())

	if _, err := svc.UpdateTodo(context.Background(), "", &UpdateTodoRequest{}); err == nil {
		t.Error("Expected error for missing ID")
	}
	if _, err := svc.UpdateTodo(context.Background(), "todo-123", nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

// TestDeleteTodo verifies the confirmation message names the identifier
func TestDeleteTodo(t *testing.T) {
	svc := NewTodoService(testLogger())

	message, err := svc.DeleteTodo(context.Background(), "todo-456")
	if err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	if !strings.Contains(message, "todo-456") {
		t.Errorf("Expected message to name the ID, got '%s'", message)
	}

	if _, err := svc.DeleteTodo(context.Background(), ""); err == nil {
		t.Error("Expected error for missing ID")
	}
}

// TestServiceContainer verifies the factory wires both services
func TestServiceContainer(t *testing.T) {
	container, err := NewServiceContainer(&ServiceConfig{FunctionName: "hello"})
	if err != nil {
		t.Fatalf("Failed to create service container: %v", err)
	}

	if container.GreetingService == nil {
		t.Error("GreetingService is nil")
	}
	if container.TodoService == nil {
		t.Error("TodoService is nil")
	}

	if err := container.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	if _, err := NewServiceContainer(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}
