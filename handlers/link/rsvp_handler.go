package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"chodae.link/configs/configslog"
	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Form gönderiminden sonra sayfada gösterilen bildirimler (?notice=).
var noticeMessages = map[string]string{
	"rsvp-ok":       "참석 여부가 전달되었습니다.",
	"rsvp-invalid":  "입력값을 다시 확인해 주세요.",
	"guestbook-ok":  "축하 메시지가 등록되었습니다.",
	"guestbook-bad": "이름과 메시지를 입력해 주세요.",
}

// PublicResponseHandler paylaşım sayfasındaki HTML formlarını işler.
type PublicResponseHandler struct {
	invitationService services.IInvitationService
	rsvpService       services.IRSVPService
	guestbookService  services.IGuestbookService
}

// NewPublicResponseHandler yeni bir PublicResponseHandler örneği oluşturur.
func NewPublicResponseHandler(invitationService services.IInvitationService, rsvpService services.IRSVPService, guestbookService services.IGuestbookService) *PublicResponseHandler {
	return &PublicResponseHandler{
		invitationService: invitationService,
		rsvpService:       rsvpService,
		guestbookService:  guestbookService,
	}
}

// rsvpFormPayload form alanlarını doğrulayıcının beklediği tiplere çevirir.
// Çevrilemeyen değerler olduğu gibi bırakılır, doğrulayıcı hatayı raporlar.
func rsvpFormPayload(c *fiber.Ctx) map[string]any {
	payload := map[string]any{
		"guestName":  c.FormValue("guestName"),
		"guestPhone": c.FormValue("guestPhone"),
		"message":    c.FormValue("message"),
	}
	if count := strings.TrimSpace(c.FormValue("guestCount")); count != "" {
		payload["guestCount"] = json.Number(count)
	}
	if raw := c.FormValue("attending"); raw != "" {
		if attending, err := strconv.ParseBool(raw); err == nil {
			payload["attending"] = attending
		} else {
			payload["attending"] = raw
		}
	}
	return payload
}

func (h *PublicResponseHandler) redirectBack(c *fiber.Ctx, shareID, notice string) error {
	return c.Redirect("/i/"+shareID+"?notice="+notice, fiber.StatusSeeOther)
}

// SubmitRSVP (POST /i/:shareId/rsvp)
func (h *PublicResponseHandler) SubmitRSVP(c *fiber.Ctx) error {
	shareID := c.Params("shareId")
	invitation, err := h.invitationService.GetPublishedInvitation(c.UserContext(), shareID)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return fiber.ErrNotFound
		}
		configslog.Log.Error("SubmitRSVP: GetPublishedInvitation error", zap.String("share_id", shareID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	if _, _, err := h.rsvpService.Submit(c.UserContext(), invitation.ID, rsvpFormPayload(c)); err != nil {
		if errors.Is(err, services.ErrRSVPInvalidInput) {
			return h.redirectBack(c, shareID, "rsvp-invalid")
		}
		configslog.Log.Error("SubmitRSVP Error", zap.String("share_id", shareID), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return h.redirectBack(c, shareID, "rsvp-ok")
}

// SubmitGuestbook (POST /i/:shareId/guestbook)
func (h *PublicResponseHandler) SubmitGuestbook(c *fiber.Ctx) error {
	shareID := c.Params("shareId")
	invitation, err := h.invitationService.GetPublishedInvitation(c.UserContext(), shareID)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return fiber.ErrNotFound
		}
		configslog.Log.Error("SubmitGuestbook: GetPublishedInvitation error", zap.String("share_id", shareID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	payload := map[string]any{
		"authorName": c.FormValue("authorName"),
		"content":    c.FormValue("content"),
	}
	if _, err := h.guestbookService.Submit(c.UserContext(), invitation.ID, payload); err != nil {
		if errors.Is(err, services.ErrGuestbookInvalidInput) {
			return h.redirectBack(c, shareID, "guestbook-bad")
		}
		configslog.Log.Error("SubmitGuestbook Error", zap.String("share_id", shareID), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return h.redirectBack(c, shareID, "guestbook-ok")
}
