package utils

import "github.com/gofiber/fiber/v2"

// APIResponse defines the common structure returned by the API.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type paginatedResponse struct {
	APIResponse
	Meta PaginationMeta `json:"meta"`
}

// JSONSuccess sends a successful JSON response with the provided status code, message and data.
func JSONSuccess(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	response := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}

	return c.Status(statusCode).JSON(response)
}

// JSONError sends an error JSON response with the provided status code, message and error details.
func JSONError(c *fiber.Ctx, statusCode int, message string, errDetail interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	response := APIResponse{
		Status:  "error",
		Message: message,
		Errors:  errDetail,
	}

	return c.Status(statusCode).JSON(response)
}

// JSONPaginated sends a successful response carrying a list plus pagination meta.
func JSONPaginated(c *fiber.Ctx, statusCode int, message string, data interface{}, meta PaginationMeta) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	response := paginatedResponse{
		APIResponse: APIResponse{
			Status:  "success",
			Message: message,
			Data:    data,
		},
		Meta: meta,
	}

	return c.Status(statusCode).JSON(response)
}

// --- Shorthand helpers ---

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return JSONSuccess(c, fiber.StatusCreated, message, data)
}

func BadRequest(c *fiber.Ctx, message string, errDetail interface{}) error {
	return JSONError(c, fiber.StatusBadRequest, message, errDetail)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusUnauthorized, message, nil)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusForbidden, message, nil)
}

func NotFound(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusNotFound, message, nil)
}

func Conflict(c *fiber.Ctx, message string, errDetail interface{}) error {
	return JSONError(c, fiber.StatusConflict, message, errDetail)
}

func UnprocessableEntity(c *fiber.Ctx, message string, errDetail interface{}) error {
	return JSONError(c, fiber.StatusUnprocessableEntity, message, errDetail)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusInternalServerError, message, nil)
}
