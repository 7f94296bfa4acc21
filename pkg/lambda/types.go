package lambda

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(req *Request) (*Response, error)

// CORSHeaders returns the permissive cross-origin headers attached to every
// function response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	}
}

// FromAPIGatewayEvent converts an API Gateway proxy event to a generic request
func FromAPIGatewayEvent(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}
}

// ToAPIGatewayResponse converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGatewayResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// JSONResponse builds a response with a JSON-encoded body, CORS headers and
// Content-Type set. Marshal failures degrade to a 500 with a fixed body.
func JSONResponse(statusCode int, payload interface{}) *Response {
	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		return &Response{
			StatusCode: 500,
			Headers:    headers,
			Body:       []byte(`{"error": "Internal server error"}`),
		}
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}
}

// EmptyResponse builds a response with CORS headers and no body, used for
// OPTIONS preflight requests.
func EmptyResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    CORSHeaders(),
		Body:       []byte{},
	}
}
