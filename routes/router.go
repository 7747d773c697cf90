package routes

import (
	"time"

	"chodae.link/configs/configsenv"
	"chodae.link/middlewares"
	"chodae.link/pkg/admission"
	"chodae.link/pkg/inviteform"
	"chodae.link/pkg/templatecatalog"
	"chodae.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Yanıt toplama uç noktaları için varsayılandan sıkı sınır.
const responseRateLimit = 10

// Dependencies rotaların ihtiyaç duyduğu paylaşılan bileşenler.
type Dependencies struct {
	Config    configsenv.Config
	DB        *gorm.DB
	Catalog   *templatecatalog.Catalog
	Validator *inviteform.Validator
	Guard     *admission.Guard
	Now       func() time.Time
}

type routeContext struct {
	deps              Dependencies
	invitationService services.IInvitationService
	rsvpService       services.IRSVPService
	guestbookService  services.IGuestbookService
	defaultLimit      admission.Config
	responseLimit     admission.Config
}

func newRouteContext(deps Dependencies) *routeContext {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Catalog == nil {
		deps.Catalog = templatecatalog.Default()
	}
	if deps.Validator == nil {
		deps.Validator = inviteform.NewValidator(deps.Catalog, deps.Config.Location(), deps.Now)
	}
	if deps.Guard == nil {
		deps.Guard = admission.NewGuard(admission.NewLimiter(nil, deps.Now), deps.Config.IsProduction())
	}
	return &routeContext{
		deps:              deps,
		invitationService: services.NewInvitationService(deps.DB, deps.Validator),
		rsvpService:       services.NewRSVPService(deps.DB),
		guestbookService:  services.NewGuestbookService(deps.DB),
		defaultLimit:      admission.Config{Limit: deps.Config.RateLimitDefault, Window: deps.Config.RateLimitWindow},
		responseLimit:     admission.Config{Limit: responseRateLimit, Window: deps.Config.RateLimitWindow},
	}
}

// guard kapsamı rota parametresinden türeyen admission middleware'i.
func (rc *routeContext) guard(prefix, param string, cfg admission.Config) fiber.Handler {
	return middlewares.Admission(rc.deps.Guard, middlewares.ParamScope(prefix, param), cfg)
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(middlewares.Identity(deps.Config.AuthUserHeader))

	rc := newRouteContext(deps)

	// --- Rota Grupları ---
	registerAPIRoutes(app, rc)
	registerPanelRoutes(app, rc)
	registerPublicLinkRoutes(app, rc)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Resource not found."})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":    "페이지를 찾을 수 없습니다",
			"Message":  "요청하신 페이지가 존재하지 않습니다.",
			"Template": templatecatalog.Template{},
		}, "layouts/public_layout")
	}
}
