package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestTodoCreation tests basic todo creation and validation
func TestTodoCreation(t *testing.T) {
	todo := NewTodo("Buy flour")
	if err := todo.Validate(); err != nil {
		t.Errorf("Todo validation failed: %v", err)
	}

	if todo.Content != "Buy flour" {
		t.Errorf("Expected content 'Buy flour', got '%s'", todo.Content)
	}

	if todo.IsDone {
		t.Error("New todo should not be done")
	}

	if todo.ID == "" {
		t.Error("New todo should have a generated ID")
	}

	if _, err := time.Parse(time.RFC3339, todo.CreatedAt); err != nil {
		t.Errorf("CreatedAt is not RFC3339: %v", err)
	}

	if todo.CreatedAt != todo.UpdatedAt {
		t.Errorf("Expected matching timestamps on creation, got %s and %s", todo.CreatedAt, todo.UpdatedAt)
	}
}

// TestTodoIDUniqueness verifies generated IDs are unique across repeated calls
func TestTodoIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTodoID()
		if id == "" {
			t.Fatal("Generated ID is empty")
		}
		if !strings.Contains(id, "-") {
			t.Errorf("Expected timestamp-suffix format, got '%s'", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

// TestTodoValidation tests validation failures
func TestTodoValidation(t *testing.T) {
	todo := NewTodo("")
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for empty content")
	}

	todo = NewTodo("   ")
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for whitespace-only content")
	}

	todo = &Todo{Content: "valid content"}
	if err := todo.Validate(); err == nil {
		t.Error("Expected validation error for missing ID")
	}
}

// TestMarkDone tests completion flag handling
func TestMarkDone(t *testing.T) {
	todo := NewTodo("Finish report")
	todo.CreatedAt = PlaceholderCreatedAt
	todo.UpdatedAt = PlaceholderCreatedAt

	todo.MarkDone()

	if !todo.IsDone {
		t.Error("Expected todo to be done after MarkDone")
	}
	if todo.UpdatedAt == PlaceholderCreatedAt {
		t.Error("Expected UpdatedAt to be refreshed by MarkDone")
	}
}

// TestResponseEnvelope verifies the success/error invariant of the envelope
func TestResponseEnvelope(t *testing.T) {
	success := SuccessResponse([]*Todo{NewTodo("one")})
	if !success.Success {
		t.Error("SuccessResponse should have Success=true")
	}
	if success.Error != "" {
		t.Error("SuccessResponse should not carry an error")
	}

	failure := FailureResponse("something went wrong")
	if failure.Success {
		t.Error("FailureResponse should have Success=false")
	}
	if failure.Error == "" {
		t.Error("FailureResponse must carry an error")
	}
	if failure.Data != nil {
		t.Error("FailureResponse must not carry data")
	}

	message := MessageResponse("done")
	if !message.Success || message.Message != "done" {
		t.Errorf("MessageResponse not built correctly: %+v", message)
	}
}

// TestEnvelopeJSONShape verifies omitted fields stay out of the wire format
func TestEnvelopeJSONShape(t *testing.T) {
	body, err := json.Marshal(FailureResponse("bad input"))
	if err != nil {
		t.Fatalf("Failed to marshal envelope: %v", err)
	}

	if strings.Contains(string(body), `"data"`) {
		t.Errorf("Failure envelope should omit data, got %s", body)
	}
	if !strings.Contains(string(body), `"success":false`) {
		t.Errorf("Expected success=false in %s", body)
	}
	if !strings.Contains(string(body), `"error":"bad input"`) {
		t.Errorf("Expected error field in %s", body)
	}
}
