package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"amplify-backend-api/internal/config"
	"amplify-backend-api/internal/handlers"
	"amplify-backend-api/pkg/lambda"
)

func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success": false, "error": "Internal server error"}`,
		}, nil
	}

	req := lambda.FromAPIGatewayEvent(event)

	todoHandler := handlers.NewTodoHandler(container.TodoService, container.Logger)

	resp, err := todoHandler.Handle(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success": false, "error": "Internal server error"}`,
		}, nil
	}

	return resp.ToAPIGatewayResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
