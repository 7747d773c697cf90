package routes

import (
	handlers "chodae.link/handlers/api"
	"chodae.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki JSON uç noktalarını tanımlar.
// Değiştiren istekler önce admission kontrolünden, sonra gerekiyorsa kimlik kontrolünden geçer.
func registerAPIRoutes(app *fiber.App, rc *routeContext) {
	invitationHandler := handlers.NewInvitationHandler(rc.invitationService, rc.deps.Config.AppBaseURL)
	responseHandler := handlers.NewResponseHandler(rc.rsvpService, rc.guestbookService)
	templateHandler := handlers.NewTemplateHandler(rc.deps.Catalog)

	api := app.Group("/api")

	api.Get("/templates", templateHandler.ListTemplates)
	api.Get("/templates/:templateId", templateHandler.GetTemplate)

	api.Get("/share/:shareId", invitationHandler.ShareDetail)

	invites := api.Group("/invites")
	invites.Post("/",
		middlewares.Admission(rc.deps.Guard, middlewares.StaticScope("invite-create"), rc.defaultLimit),
		invitationHandler.CreateInvitation)
	invites.Get("/", middlewares.AuthMiddleware, invitationHandler.ListInvitations)
	invites.Get("/:inviteId", middlewares.AuthMiddleware, invitationHandler.GetInvitation)
	invites.Patch("/:inviteId",
		rc.guard("invite-update", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.UpdateInvitation)
	invites.Put("/:inviteId",
		rc.guard("invite-update", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.UpdateInvitation)
	invites.Delete("/:inviteId",
		rc.guard("invite-delete", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.DeleteInvitation)
	invites.Post("/:inviteId/status",
		rc.guard("invite-status", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.SetStatus)
	invites.Post("/:inviteId/checkout",
		rc.guard("invite-checkout", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.Checkout)
	invites.Post("/:inviteId/claim",
		rc.guard("invite-claim", "inviteId", rc.defaultLimit), middlewares.AuthMiddleware,
		invitationHandler.Claim)

	invites.Get("/:inviteId/rsvps", responseHandler.ListRSVPs)
	invites.Post("/:inviteId/rsvps",
		rc.guard("invite-rsvp", "inviteId", rc.responseLimit),
		responseHandler.SubmitRSVP)
	invites.Get("/:inviteId/guestbook", responseHandler.ListGuestbook)
	invites.Post("/:inviteId/guestbook",
		rc.guard("invite-guestbook", "inviteId", rc.responseLimit),
		responseHandler.SubmitGuestbook)
}
