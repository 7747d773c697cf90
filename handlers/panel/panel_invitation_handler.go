package handlers

import (
	"errors"

	"chodae.link/configs/configslog"
	"chodae.link/middlewares"
	"chodae.link/models"
	"chodae.link/pkg/formatter"
	"chodae.link/pkg/queryparams"
	"chodae.link/pkg/templatecatalog"
	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Liste sayfasındaki bildirimler (?notice=).
var panelNotices = map[string]string{
	"deleted":   "초대장이 삭제되었습니다.",
	"not-found": "초대장을 찾을 수 없습니다.",
	"failed":    "요청을 처리하지 못했습니다. 잠시 후 다시 시도해 주세요.",
}

// invitationRow liste sayfasında bir davetiye satırı.
type invitationRow struct {
	ID           string
	ShareID      string
	Title        string
	TemplateName string
	Date         string
	Status       string
	Published    bool
	IsPaid       bool
}

// InvitationHandler kullanıcının kendi davetiyelerini yönettiği panel sayfaları.
type InvitationHandler struct {
	service services.IInvitationService
	catalog *templatecatalog.Catalog
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler(service services.IInvitationService, catalog *templatecatalog.Catalog) *InvitationHandler {
	if catalog == nil {
		catalog = templatecatalog.Default()
	}
	return &InvitationHandler{service: service, catalog: catalog}
}

// ListInvitations (GET /panel/invitations) oturumdaki kullanıcının davetiyelerini listeler.
func (h *InvitationHandler) ListInvitations(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.ListParams{}
	}

	result, err := h.service.GetInvitationsForOwner(c.UserContext(), middlewares.UserID(c), params)
	if err != nil {
		configslog.Log.Error("Panel - ListInvitations Error", zap.String("user_id", middlewares.UserID(c)), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	rows, err := h.rows(result)
	if err != nil {
		return err
	}
	return c.Render("panel/invitation_list", fiber.Map{
		"Title":    "내 초대장",
		"Rows":     rows,
		"Meta":     result.Meta,
		"Notice":   panelNotices[c.Query("notice")],
		"Template": templatecatalog.Template{},
	}, "layouts/public_layout")
}

func (h *InvitationHandler) rows(result *queryparams.PaginatedResult) ([]invitationRow, error) {
	items, ok := result.Items.([]models.Invitation)
	if !ok {
		return nil, errors.New("unexpected invitation list type")
	}
	rows := make([]invitationRow, 0, len(items))
	for _, inv := range items {
		row := invitationRow{
			ID:        inv.ID,
			ShareID:   inv.ShareID,
			Title:     inv.Title,
			Date:      formatter.FormatDate(inv.EventDate),
			Status:    string(inv.Status),
			Published: inv.IsPublished(),
			IsPaid:    inv.IsPaid,
		}
		if tpl, found := h.catalog.ByID(inv.TemplateID); found {
			row.TemplateName = tpl.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DeleteInvitation (POST /panel/invitations/:id/delete) davetiyeyi silip listeye döner.
func (h *InvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	id := c.Params("id")
	notice := "deleted"
	if err := h.service.DeleteInvitation(c.UserContext(), id, middlewares.UserID(c)); err != nil {
		notice = "failed"
		if errors.Is(err, services.ErrInvitationNotFound) {
			notice = "not-found"
		} else {
			configslog.Log.Error("Panel - DeleteInvitation Error", zap.String("id", id), zap.Error(err))
		}
	}
	return c.Redirect("/panel/invitations?notice="+notice, fiber.StatusSeeOther)
}
