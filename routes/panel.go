package routes

import (
	handlers "chodae.link/handlers/panel"
	"chodae.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki sayfaları tanımlar. Yalnızca oturum açmış kullanıcılar erişebilir.
func registerPanelRoutes(app *fiber.App, rc *routeContext) {
	invitationHandler := handlers.NewInvitationHandler(rc.invitationService, rc.deps.Catalog)

	panelGroup := app.Group("/panel", middlewares.AuthMiddleware)
	panelGroup.Get("/invitations", invitationHandler.ListInvitations)
	panelGroup.Post("/invitations/:id/delete",
		rc.guard("invite-delete", "id", rc.defaultLimit),
		invitationHandler.DeleteInvitation)
}
