package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CustomError carries the HTTP status an error should be rendered with.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Detail     string `json:"error,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WithDetail attaches the underlying error text to the response body.
func (e *CustomError) WithDetail(err error) *CustomError {
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// AsCustomError unwraps err into a CustomError when possible.
func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

func CustomErrorResponse(c *gin.Context, err *CustomError) {
	c.AbortWithStatusJSON(err.StatusCode, err)
}

func InternalErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
}
