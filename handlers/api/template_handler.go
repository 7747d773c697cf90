package handlers

import (
	"chodae.link/models"
	"chodae.link/pkg/templatecatalog"

	"github.com/gofiber/fiber/v2"
)

// TemplateHandler şablon kataloğunu sunar.
type TemplateHandler struct {
	catalog *templatecatalog.Catalog
}

func NewTemplateHandler(catalog *templatecatalog.Catalog) *TemplateHandler {
	if catalog == nil {
		catalog = templatecatalog.Default()
	}
	return &TemplateHandler{catalog: catalog}
}

// ListTemplates (GET /api/templates?type=&premium=true|false)
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var items []templatecatalog.Template
	premium := c.Query("premium")
	if t := c.Query("type"); t != "" {
		items = h.catalog.ByType(models.InvitationType(t))
		if premium == "true" || premium == "false" {
			items = filterPremium(items, premium == "true")
		}
	} else {
		switch premium {
		case "true":
			items = h.catalog.Premium()
		case "false":
			items = h.catalog.Free()
		default:
			items = h.catalog.All()
		}
	}
	return c.JSON(fiber.Map{"items": items, "stats": h.catalog.Stats()})
}

// GetTemplate (GET /api/templates/:templateId)
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	tpl, ok := h.catalog.ByID(c.Params("templateId"))
	if !ok {
		return messageJSON(c, fiber.StatusNotFound, "Template not found.")
	}
	return c.JSON(fiber.Map{"template": tpl})
}

func filterPremium(items []templatecatalog.Template, premium bool) []templatecatalog.Template {
	out := make([]templatecatalog.Template, 0, len(items))
	for _, tpl := range items {
		if tpl.IsPremium == premium {
			out = append(out, tpl)
		}
	}
	return out
}
