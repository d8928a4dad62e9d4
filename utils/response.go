package utils

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ApiError is the error half of the response envelope. Handlers return it
// through fiber's error chain and ErrorHandler renders it.
type ApiError struct {
	Status    int      `json:"status"`
	Message   string   `json:"message"`
	SubErrors []string `json:"subErrors"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func BadRequest(message string, subErrors ...string) *ApiError {
	if message == "" {
		message = "Bad Request"
	}
	return &ApiError{Status: fiber.StatusBadRequest, Message: message, SubErrors: subErrors}
}

func Unauthorized(message string) *ApiError {
	if message == "" {
		message = "Unauthorized"
	}
	return &ApiError{Status: fiber.StatusUnauthorized, Message: message, SubErrors: []string{}}
}

func Forbidden(message string) *ApiError {
	if message == "" {
		message = "Forbidden"
	}
	return &ApiError{Status: fiber.StatusForbidden, Message: message, SubErrors: []string{}}
}

func NotFound(message string) *ApiError {
	if message == "" {
		message = "Not Found"
	}
	return &ApiError{Status: fiber.StatusNotFound, Message: message, SubErrors: []string{}}
}

func UpstreamError(message string) *ApiError {
	if message == "" {
		message = "Upstream service failed"
	}
	return &ApiError{Status: fiber.StatusBadGateway, Message: message, SubErrors: []string{}}
}

func Internal(message string) *ApiError {
	if message == "" {
		message = "Internal Server Error"
	}
	return &ApiError{Status: fiber.StatusInternalServerError, Message: message, SubErrors: []string{}}
}

type envelope struct {
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
	Error     *ApiError   `json:"error"`
}

// Respond wraps successful payloads in the {timestamp, data, error} envelope.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(envelope{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Error:     nil,
	})
}

// ErrorHandler is wired into the fiber app config. ApiErrors pass through
// as-is; anything else is logged and redacted to a plain 500 unless the
// app runs in development mode.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apiErr, ok := err.(*ApiError)
	if !ok {
		if e, ok := err.(*fiber.Error); ok {
			apiErr = &ApiError{Status: e.Code, Message: e.Message, SubErrors: []string{}}
		} else {
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			message := "Internal Server Error"
			if IsDevelopment() {
				message = err.Error()
			}
			apiErr = Internal(message)
		}
	}
	if apiErr.SubErrors == nil {
		apiErr.SubErrors = []string{}
	}

	return c.Status(apiErr.Status).JSON(envelope{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      nil,
		Error:     apiErr,
	})
}
