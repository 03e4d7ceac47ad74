package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Response is the standard JSON envelope for every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Code:    fiber.StatusOK,
		Status:  "OK",
		Message: message,
		Data:    data,
	})
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Code:    fiber.StatusCreated,
		Status:  "Created",
		Message: message,
		Data:    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Code:    status,
		Status:  statusText(status),
		Message: message,
	})
}

// Fail renders a service error. Classified errors keep their message;
// everything else degrades to a generic 500 so store internals never reach
// the client.
func Fail(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return Error(c, HTTPStatus(ae.Code), ae.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "server error")
}

func statusText(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusInternalServerError:
		return "Internal Server Error"
	}
	return "Error"
}
