// Package responses writes the uniform API response envelope. Every
// endpoint, success or failure, returns the same shape:
//
//	{ "data": ..., "message": "...", "success": true,
//	  "statusCode": 200, "errors": [], "timestamp": "..." }
package responses

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper returned by every endpoint.
type Envelope struct {
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Errors     []string `json:"errors"`
	Timestamp  string   `json:"timestamp"`
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Data:       data,
		Message:    message,
		Success:    true,
		StatusCode: status,
		Errors:     []string{},
		Timestamp:  timestamp(),
	})
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any, message string) {
	Success(c, http.StatusOK, data, message)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data any, message string) {
	Success(c, http.StatusCreated, data, message)
}

// Error writes a failure envelope with the given status code.
func Error(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, Envelope{
		Message:    message,
		Success:    false,
		StatusCode: status,
		Errors:     errs,
		Timestamp:  timestamp(),
	})
}

// NotFound writes a 404 failure envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest writes a 400 failure envelope.
func BadRequest(c *gin.Context, message string, errs ...string) {
	Error(c, http.StatusBadRequest, message, errs...)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
