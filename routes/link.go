package routes

import (
	handlers "chodae.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes paylaşım sayfasını (/i/:shareId) ve sayfadaki formları tanımlar.
func registerPublicLinkRoutes(app *fiber.App, rc *routeContext) {
	linkHandler := handlers.NewLinkHandler(rc.invitationService, rc.deps.Catalog, rc.deps.Config.Location(), rc.deps.Now)
	responseHandler := handlers.NewPublicResponseHandler(rc.invitationService, rc.rsvpService, rc.guestbookService)

	app.Get("/i/:shareId", linkHandler.HandleInvitation)
	app.Post("/i/:shareId/rsvp",
		rc.guard("share-rsvp", "shareId", rc.responseLimit),
		responseHandler.SubmitRSVP)
	app.Post("/i/:shareId/guestbook",
		rc.guard("share-guestbook", "shareId", rc.responseLimit),
		responseHandler.SubmitGuestbook)
}
