package handlers

import (
	"errors"
	"strings"

	"chodae.link/middlewares"
	"chodae.link/pkg/queryparams"
	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
)

// InvitationHandler davetiye JSON uç noktalarını yönetir.
type InvitationHandler struct {
	service services.IInvitationService
	baseURL string // Boşsa isteğin kökeni kullanılır
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler(service services.IInvitationService, baseURL string) *InvitationHandler {
	return &InvitationHandler{service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

// fail servis hatasını HTTP yanıtına çevirir. Sahiplik uyuşmazlığı kaydın varlığını sızdırmamak için 404 döner.
func (h *InvitationHandler) fail(c *fiber.Ctx, op string, err error) error {
	if handled, werr := validationFailed(c, err); handled {
		return werr
	}
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		return messageJSON(c, fiber.StatusNotFound, msgInviteNotFound)
	case errors.Is(err, services.ErrInvitationUnauthenticated):
		return messageJSON(c, fiber.StatusUnauthorized, msgAuthRequired)
	case errors.Is(err, services.ErrInvInvalidEditToken):
		return messageJSON(c, fiber.StatusForbidden, "Edit token is invalid.")
	case errors.Is(err, services.ErrInvInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgInvalidInput,
			"issues": fiber.Map{
				"formErrors":  []string{},
				"fieldErrors": fiber.Map{"status": []string{"Status must be draft, published or archived."}},
			},
		})
	}
	return internalError(c, op, err)
}

// CreateInvitation (POST /api/invites)
// Oturum yoksa davetiye sahipsiz oluşturulur ve bir kez editToken döner.
func (h *InvitationHandler) CreateInvitation(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}

	result, err := h.service.CreateInvitation(c.UserContext(), middlewares.UserID(c), payload)
	if err != nil {
		return h.fail(c, "CreateInvitation", err)
	}

	body := fiber.Map{"id": result.Invitation.ID, "shareId": result.Invitation.ShareID}
	if result.EditToken != "" {
		body["editToken"] = result.EditToken
	}
	return c.JSON(body)
}

// ListInvitations (GET /api/invites)
func (h *InvitationHandler) ListInvitations(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.ListParams{}
	}

	result, err := h.service.GetInvitationsForOwner(c.UserContext(), middlewares.UserID(c), params)
	if err != nil {
		return h.fail(c, "ListInvitations", err)
	}
	return c.JSON(result)
}

// GetInvitation (GET /api/invites/:inviteId)
func (h *InvitationHandler) GetInvitation(c *fiber.Ctx) error {
	invitation, err := h.service.GetInvitationForOwner(c.UserContext(), c.Params("inviteId"), middlewares.UserID(c))
	if err != nil {
		return h.fail(c, "GetInvitation", err)
	}
	return c.JSON(fiber.Map{"invite": invitation})
}

// UpdateInvitation (PATCH|PUT /api/invites/:inviteId)
func (h *InvitationHandler) UpdateInvitation(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}

	invitation, err := h.service.UpdateInvitation(c.UserContext(), c.Params("inviteId"), middlewares.UserID(c), payload)
	if err != nil {
		return h.fail(c, "UpdateInvitation", err)
	}
	return c.JSON(fiber.Map{"invite": invitation})
}

// DeleteInvitation (DELETE /api/invites/:inviteId)
func (h *InvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	id := c.Params("inviteId")
	if err := h.service.DeleteInvitation(c.UserContext(), id, middlewares.UserID(c)); err != nil {
		return h.fail(c, "DeleteInvitation", err)
	}
	return c.JSON(fiber.Map{"message": "Invitation deleted.", "id": id})
}

// SetStatus (POST /api/invites/:inviteId/status)
func (h *InvitationHandler) SetStatus(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}
	status, _ := payload["status"].(string)

	invitation, err := h.service.SetStatus(c.UserContext(), c.Params("inviteId"), middlewares.UserID(c), strings.TrimSpace(status))
	if err != nil {
		return h.fail(c, "SetStatus", err)
	}
	return c.JSON(fiber.Map{"invite": invitation})
}

// Checkout (POST /api/invites/:inviteId/checkout)
// Ödeme sağlayıcısı bağlı değil; davetiye doğrudan ödendi olarak işaretlenir.
func (h *InvitationHandler) Checkout(c *fiber.Ctx) error {
	invitation, err := h.service.Checkout(c.UserContext(), c.Params("inviteId"), middlewares.UserID(c))
	if err != nil {
		return h.fail(c, "Checkout", err)
	}

	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}
	return c.JSON(fiber.Map{
		"ok":          true,
		"invite":      invitation,
		"redirectUrl": base + "/i/" + invitation.ShareID + "?paid=true",
	})
}

// Claim (POST /api/invites/:inviteId/claim)
func (h *InvitationHandler) Claim(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return invalidBody(c)
	}
	token, _ := payload["editToken"].(string)

	invitation, err := h.service.Claim(c.UserContext(), c.Params("inviteId"), middlewares.UserID(c), strings.TrimSpace(token))
	if err != nil {
		return h.fail(c, "Claim", err)
	}
	return c.JSON(fiber.Map{"invite": invitation})
}

// ShareDetail (GET /api/share/:shareId)
func (h *InvitationHandler) ShareDetail(c *fiber.Ctx) error {
	detail, err := h.service.GetShareDetail(c.UserContext(), c.Params("shareId"))
	if err != nil {
		return h.fail(c, "ShareDetail", err)
	}
	return c.JSON(detail)
}
