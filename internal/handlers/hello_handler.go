package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/services"
	"amplify-backend-api/pkg/lambda"
)

// HelloHandler handles greeting HTTP requests
type HelloHandler struct {
	greetingService services.GreetingService
	logger          logrus.FieldLogger
}

// NewHelloHandler creates a new hello handler
func NewHelloHandler(greetingService services.GreetingService, logger logrus.FieldLogger) *HelloHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &HelloHandler{
		greetingService: greetingService,
		logger:          logger,
	}
}

// @Summary Get a greeting
// @Description Returns a greeting for the name in the query string
// @Tags hello
// @Produce json
// @Param name query string false "Name to greet" default(World)
// @Success 200 {object} models.GreetingResponse
// @Failure 500 {object} ErrorResponse
// @Router /hello [get]
func (h *HelloHandler) GetGreeting(c *gin.Context) {
	req := &services.GreetRequest{Name: c.Query("name")}

	greeting, err := h.greetingService.Greet(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate greeting",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, greeting)
}

// @Summary Post a greeting
// @Description Returns a greeting combining the posted name and message
// @Tags hello
// @Accept json
// @Produce json
// @Param greeting body services.GreetRequest true "Greeting data"
// @Success 200 {object} models.GreetingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hello [post]
func (h *HelloHandler) PostGreeting(c *gin.Context) {
	var req services.GreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	greeting, err := h.greetingService.Greet(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate greeting",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, greeting)
}

// Handle dispatches a serverless greeting request by HTTP method. OPTIONS
// preflight is answered before dispatch; panics surface as a 500 response.
func (h *HelloHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", r).Error("Unhandled panic in hello handler")
			resp = lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{
				Error: "Internal server error",
			})
			err = nil
		}
	}()

	if req.Method == http.MethodOptions {
		return lambda.EmptyResponse(http.StatusOK), nil
	}

	switch req.Method {
	case http.MethodGet:
		return h.handleGet(ctx, req)
	case http.MethodPost:
		return h.handlePost(ctx, req)
	default:
		return lambda.JSONResponse(http.StatusMethodNotAllowed, ErrorResponse{
			Error: "Method not allowed",
		}), nil
	}
}

func (h *HelloHandler) handleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	greetReq := &services.GreetRequest{Name: req.QueryParams["name"]}

	greeting, err := h.greetingService.Greet(ctx, greetReq)
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate greeting",
			Message: err.Error(),
		}), nil
	}

	return lambda.JSONResponse(http.StatusOK, greeting), nil
}

func (h *HelloHandler) handlePost(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var greetReq services.GreetRequest
	if err := json.Unmarshal(req.Body, &greetReq); err != nil {
		return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		}), nil
	}

	greeting, err := h.greetingService.Greet(ctx, &greetReq)
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate greeting",
			Message: err.Error(),
		}), nil
	}

	return lambda.JSONResponse(http.StatusOK, greeting), nil
}
