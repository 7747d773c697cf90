package handlers

import (
	"errors"

	"chodae.link/configs/configslog"
	"chodae.link/pkg/inviteform"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgInvalidInput   = "Invalid input."
	msgInvalidBody    = "Request body must be a JSON object."
	msgAuthRequired   = "Authentication required."
	msgInviteNotFound = "Invitation not found."
	msgInternal       = "Something went wrong. Please try again later."
)

func messageJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// parsePayload JSON gövdesini tipsiz haritaya okur; gövde bir nesne değilse false döner.
func parsePayload(c *fiber.Ctx) (map[string]any, bool) {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func invalidBody(c *fiber.Ctx) error {
	verr := &inviteform.ValidationError{}
	verr.AddForm(msgInvalidBody)
	_, err := validationFailed(c, verr)
	return err
}

// validationFailed doğrulama hatasını alan bazlı 400 yanıtına çevirir; başka bir hataysa false döner.
func validationFailed(c *fiber.Ctx, err error) (bool, error) {
	var verr *inviteform.ValidationError
	if !errors.As(err, &verr) {
		return false, nil
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": msgInvalidInput,
		"issues": fiber.Map{
			"formErrors":  verr.FormErrors(),
			"fieldErrors": verr.FieldErrors(),
		},
	})
}

func internalError(c *fiber.Ctx, op string, err error) error {
	configslog.Log.Error(op, zap.String("path", c.Path()), zap.Error(err))
	return messageJSON(c, fiber.StatusInternalServerError, msgInternal)
}
