package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes an ErrorResponse, echoing the request id set by the request logger.
func Error(c *fiber.Ctx, status int, message string) error {
	id, _ := c.Locals("requestId").(string)
	return JSON(c, status, ErrorResponse{Message: message, RequestID: id})
}
