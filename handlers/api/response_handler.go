package handlers

import (
	"errors"

	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
)

// ResponseHandler katılım yanıtı ve ziyaretçi defteri uç noktaları.
type ResponseHandler struct {
	rsvpService      services.IRSVPService
	guestbookService services.IGuestbookService
}

func NewResponseHandler(rsvpService services.IRSVPService, guestbookService services.IGuestbookService) *ResponseHandler {
	return &ResponseHandler{rsvpService: rsvpService, guestbookService: guestbookService}
}

func (h *ResponseHandler) fail(c *fiber.Ctx, op string, err error) error {
	if handled, werr := validationFailed(c, err); handled {
		return werr
	}
	if errors.Is(err, services.ErrRSVPInvitationNotFound) || errors.Is(err, services.ErrGuestbookInvitationNotFound) {
		return messageJSON(c, fiber.StatusNotFound, msgInviteNotFound)
	}
	return internalError(c, op, err)
}

// ListRSVPs (GET /api/invites/:inviteId/rsvps)
func (h *ResponseHandler) ListRSVPs(c *fiber.Ctx) error {
	items, summary, err := h.rsvpService.List(c.UserContext(), c.Params("inviteId"))
	if err != nil {
		return h.fail(c, "ListRSVPs", err)
	}
	return c.JSON(fiber.Map{"items": items, "summary": summary})
}

// SubmitRSVP (POST /api/invites/:inviteId/rsvps)
func (h *ResponseHandler) SubmitRSVP(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}
	item, summary, err := h.rsvpService.Submit(c.UserContext(), c.Params("inviteId"), payload)
	if err != nil {
		return h.fail(c, "SubmitRSVP", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item, "summary": summary})
}

// ListGuestbook (GET /api/invites/:inviteId/guestbook)
func (h *ResponseHandler) ListGuestbook(c *fiber.Ctx) error {
	items, err := h.guestbookService.List(c.UserContext(), c.Params("inviteId"))
	if err != nil {
		return h.fail(c, "ListGuestbook", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// SubmitGuestbook (POST /api/invites/:inviteId/guestbook)
func (h *ResponseHandler) SubmitGuestbook(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}
	item, err := h.guestbookService.Submit(c.UserContext(), c.Params("inviteId"), payload)
	if err != nil {
		return h.fail(c, "SubmitGuestbook", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}
