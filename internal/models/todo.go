package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common constants
const (
	// Historical creation timestamp echoed on fabricated update responses
	// until a real storage layer exists to look the item up.
	PlaceholderCreatedAt = "2024-01-01T00:00:00Z"
)

// Todo represents a todo item in the system
type Todo struct {
	ID        string `json:"id" validate:"required"`
	Content   string `json:"content" validate:"required"`
	IsDone    bool   `json:"isDone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NewTodo creates a new todo with generated ID and current timestamps
func NewTodo(content string) *Todo {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Todo{
		ID:        NewTodoID(),
		Content:   content,
		IsDone:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTodoID generates a todo identifier: millisecond timestamp plus a
// random suffix so repeated calls within the same millisecond stay unique.
func NewTodoID() string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}

// Validate validates the todo data
func (t *Todo) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("todo ID is required")
	}
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("todo content is required")
	}
	return nil
}

// MarkDone marks the todo as completed and refreshes the update timestamp
func (t *Todo) MarkDone() {
	t.IsDone = true
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
