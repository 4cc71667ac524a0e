package dto

import "github.com/gin-gonic/gin"

// Response statuses used across the API. 4xx responses use "fail",
// unhandled 5xx use "error".
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// APIResponse is the JSON envelope every endpoint returns:
// {status, results?, data?, message?, token?}
type APIResponse struct {
	Status  string      `json:"status" example:"success"`
	Results *int        `json:"results,omitempty" example:"3"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewSuccessResponse wraps a single entity under its key:
// {"status":"success","data":{<key>:<value>}}
func NewSuccessResponse(key string, value interface{}) APIResponse {
	return APIResponse{
		Status: StatusSuccess,
		Data:   gin.H{key: value},
	}
}

// NewListResponse wraps a collection and its count:
// {"status":"success","results":N,"data":{<key>:[...]}}
func NewListResponse(key string, items interface{}, count int) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Results: &count,
		Data:    gin.H{key: items},
	}
}

// NewMessageResponse is a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
	}
}

// NewFailResponse is the envelope for 4xx client failures.
func NewFailResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusFail,
		Message: message,
	}
}

// NewErrorResponse is the envelope for unhandled 5xx failures. The
// underlying error message is never exposed to the client.
func NewErrorResponse() APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: "Something went wrong!",
	}
}
