package middleware

import (
	"errors"

	v1 "github.com/Behyna/sms-relay/internal/api/v1"
	"github.com/Behyna/sms-relay/internal/constants"
	"github.com/Behyna/sms-relay/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(v1.SendSMSResponse{Success: false, Error: fiberErr.Message})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(v1.SendSMSResponse{
			Success: false,
			Error:   constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

// handleServiceError reports provider failures with the provider's own text.
// Other codes use the fixed message table.
func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status := constants.GetHTTPStatus(err.Code)

	message := constants.GetErrorMessage(err.Code)
	if err.Code == constants.ErrCodeProviderFailure && err.Cause != nil {
		message = err.Cause.Error()
	}

	return c.Status(status).JSON(v1.SendSMSResponse{Success: false, Error: message})
}
