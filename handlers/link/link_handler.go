package handlers

import (
	"errors"
	"time"

	"chodae.link/configs/configslog"
	"chodae.link/models"
	"chodae.link/pkg/formatter"
	"chodae.link/pkg/templatecatalog"
	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// contact paylaşım sayfasında gösterilen telefon satırı.
type contact struct {
	Label string
	Phone string
}

// Türe göre gösterilecek telefon alanları (extraData anahtarı -> etiket).
var contactFields = []struct{ key, label string }{
	{"groomPhone", "신랑"},
	{"bridePhone", "신부"},
	{"parentPhone", "부모님"},
	{"contactPhone", "연락처"},
}

// LinkHandler public paylaşım sayfasını yönetir.
type LinkHandler struct {
	invitationService services.IInvitationService
	catalog           *templatecatalog.Catalog
	location          *time.Location
	now               func() time.Time
}

// NewLinkHandler yeni bir LinkHandler örneği oluşturur.
func NewLinkHandler(invitationService services.IInvitationService, catalog *templatecatalog.Catalog, loc *time.Location, now func() time.Time) *LinkHandler {
	if catalog == nil {
		catalog = templatecatalog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &LinkHandler{invitationService: invitationService, catalog: catalog, location: loc, now: now}
}

// HandleInvitation (GET /i/:shareId) yayınlanmış davetiyeyi gösterir.
func (h *LinkHandler) HandleInvitation(c *fiber.Ctx) error {
	shareID := c.Params("shareId")
	if len(shareID) != models.ShareIDLength {
		return h.renderNotFound(c, "초대장을 찾을 수 없습니다.")
	}

	detail, err := h.invitationService.GetShareDetail(c.UserContext(), shareID)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return h.renderNotFound(c, "초대장을 찾을 수 없습니다.")
		}
		configslog.Log.Error("HandleInvitation: GetShareDetail error", zap.String("share_id", shareID), zap.Error(err))
		return h.renderError(c, "초대장을 불러오는 중 문제가 발생했습니다.")
	}

	invitation := detail.Invite
	tpl, _ := h.catalog.ByID(invitation.TemplateID)
	return c.Render("public/invitation_view", fiber.Map{
		"Title":        invitation.Title,
		"Invite":       invitation,
		"Template":     tpl,
		"Date":         formatter.FormatDateWithDay(invitation.EventDate),
		"Time":         formatter.FormatTime(invitation.EventTime),
		"Dday":         formatter.CalculateDday(invitation.EventDate, h.now().In(h.location)),
		"AddressLines": formatter.AddressLines(invitation.VenueAddress),
		"Contacts":     contactsOf(invitation.ExtraData),
		"Summary":      detail.Summary,
		"RSVPs":        detail.RSVPs,
		"Guestbook":    detail.Guestbook,
		"Paid":         c.Query("paid") == "true",
		"Notice":       noticeMessages[c.Query("notice")],
	}, "layouts/public_layout")
}

func contactsOf(extra models.ExtraData) []contact {
	var out []contact
	for _, f := range contactFields {
		if phone, ok := extra[f.key].(string); ok && phone != "" {
			out = append(out, contact{Label: f.label, Phone: phone})
		}
	}
	return out
}

// renderNotFound standart 404 sayfasını render eder.
func (h *LinkHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":    "페이지를 찾을 수 없습니다",
		"Message":  message,
		"Template": templatecatalog.Template{},
	}, "layouts/public_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *LinkHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":    "서버 오류",
		"Message":  message,
		"Template": templatecatalog.Template{},
	}, "layouts/public_layout")
}
