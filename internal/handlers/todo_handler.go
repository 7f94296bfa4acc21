package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/models"
	"amplify-backend-api/internal/services"
	"amplify-backend-api/pkg/lambda"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService services.TodoService
	logger      logrus.FieldLogger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService services.TodoService, logger logrus.FieldLogger) *TodoHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// @Summary List todos
// @Description Get the todo list
// @Tags todos
// @Produce json
// @Success 200 {object} models.TodoResponse
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.FailureResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(todos))
}

// @Summary Create a todo
// @Description Create a new todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body services.CreateTodoRequest true "Todo data"
// @Success 201 {object} models.TodoResponse
// @Failure 400 {object} models.TodoResponse
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req services.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.FailureResponse("Invalid request body: "+err.Error()))
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.FailureResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(todo))
}

// @Summary Update a todo
// @Description Update a todo item by ID
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body services.UpdateTodoRequest true "Todo data"
// @Success 200 {object} models.TodoResponse
// @Failure 400 {object} models.TodoResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.FailureResponse("Todo ID is required"))
		return
	}

	var req services.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.FailureResponse("Invalid request body: "+err.Error()))
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, &req)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.FailureResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(todo))
}

// @Summary Delete a todo
// @Description Delete a todo item by ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} models.TodoResponse
// @Failure 400 {object} models.TodoResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.FailureResponse("Todo ID is required"))
		return
	}

	message, err := h.todoService.DeleteTodo(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.FailureResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse(message))
}

// Handle dispatches a serverless todo request by HTTP method. OPTIONS
// preflight is answered with an empty 200 before verb dispatch; panics
// surface as a 500 response.
func (h *TodoHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", r).Error("Unhandled panic in todo handler")
			resp = lambda.JSONResponse(http.StatusInternalServerError,
				models.FailureResponse("Internal server error"))
			err = nil
		}
	}()

	if req.Method == http.MethodOptions {
		return lambda.EmptyResponse(http.StatusOK), nil
	}

	switch req.Method {
	case http.MethodGet:
		return h.handleList(ctx, req)
	case http.MethodPost:
		return h.handleCreate(ctx, req)
	case http.MethodPut:
		return h.handleUpdate(ctx, req)
	case http.MethodDelete:
		return h.handleDelete(ctx, req)
	default:
		return lambda.JSONResponse(http.StatusMethodNotAllowed,
			models.FailureResponse("Method not allowed")), nil
	}
}

func (h *TodoHandler) handleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	todos, err := h.todoService.ListTodos(ctx)
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError,
			models.FailureResponse(err.Error())), nil
	}

	return lambda.JSONResponse(http.StatusOK, models.SuccessResponse(todos)), nil
}

func (h *TodoHandler) handleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq services.CreateTodoRequest
	if err := json.Unmarshal(req.Body, &createReq); err != nil {
		return lambda.JSONResponse(http.StatusBadRequest,
			models.FailureResponse("Invalid request body: "+err.Error())), nil
	}

	todo, err := h.todoService.CreateTodo(ctx, &createReq)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		return lambda.JSONResponse(status, models.FailureResponse(err.Error())), nil
	}

	return lambda.JSONResponse(http.StatusCreated, models.SuccessResponse(todo)), nil
}

func (h *TodoHandler) handleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return lambda.JSONResponse(http.StatusBadRequest,
			models.FailureResponse("Todo ID is required")), nil
	}

	var updateReq services.UpdateTodoRequest
	if err := json.Unmarshal(req.Body, &updateReq); err != nil {
		return lambda.JSONResponse(http.StatusBadRequest,
			models.FailureResponse("Invalid request body: "+err.Error())), nil
	}

	todo, err := h.todoService.UpdateTodo(ctx, id, &updateReq)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		return lambda.JSONResponse(status, models.FailureResponse(err.Error())), nil
	}

	return lambda.JSONResponse(http.StatusOK, models.SuccessResponse(todo)), nil
}

func (h *TodoHandler) handleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return lambda.JSONResponse(http.StatusBadRequest,
			models.FailureResponse("Todo ID is required")), nil
	}

	message, err := h.todoService.DeleteTodo(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		return lambda.JSONResponse(status, models.FailureResponse(err.Error())), nil
	}

	return lambda.JSONResponse(http.StatusOK, models.MessageResponse(message)), nil
}
