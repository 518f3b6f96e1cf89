package v1

import (
	"github.com/Behyna/sms-relay/internal/constants"
	"github.com/Behyna/sms-relay/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	service service.RelayService
}

func NewHandler(logger *zap.Logger, service service.RelayService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// SendSMS relays one message. Fields are not validated: a missing "to" or
// "message" reaches the provider as an empty string.
func (h *Handler) SendSMS(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendSMSRequest

	// only JSON bodies are parsed, anything else is an empty request
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(&request); err != nil {
			h.logger.Debug("Failed to parse body",
				zap.Error(err),
				zap.Int("body_size", len(c.Body())))
			return c.Status(fiber.StatusBadRequest).JSON(SendSMSResponse{
				Success: false,
				Error:   constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			})
		}
	}

	cmd := service.SendSMSCommand{
		To:      string(request.To),
		Message: string(request.Message),
	}

	resp, err := h.service.SendSMS(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(SendSMSResponse{Success: true, SID: resp.SID})
}
