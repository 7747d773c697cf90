package middlewares

import (
	"chodae.link/configs/configslog"
	"chodae.link/pkg/admission"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScopeFunc isteğe göre hız sınırı kapsamını belirler.
type ScopeFunc func(c *fiber.Ctx) string

// StaticScope her istek için aynı kapsamı kullanır.
func StaticScope(scope string) ScopeFunc {
	return func(*fiber.Ctx) string { return scope }
}

// ParamScope kapsamı rota parametresiyle birleştirir, ör. "invite-rsvp:<id>".
func ParamScope(prefix, param string) ScopeFunc {
	return func(c *fiber.Ctx) string { return prefix + ":" + c.Params(param) }
}

// Admission önce aynı-köken kontrolünü, sonra hız sınırını uygular.
func Admission(guard *admission.Guard, scope ScopeFunc, cfg admission.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !guard.AllowOrigin(c.Get(fiber.HeaderOrigin), c.Get(fiber.HeaderReferer), c.Hostname()) {
			configslog.Log.Warn("Köken kontrolü başarısız",
				zap.String("path", c.Path()),
				zap.String("origin", c.Get(fiber.HeaderOrigin)))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": admission.OriginMessage})
		}

		key := scope(c)
		result := guard.CheckRate(key, func(name string) string { return c.Get(name) }, cfg)
		if !result.Allowed {
			rejection := admission.NewRateLimitRejection(result, guard.Limiter.Now())
			for name, value := range rejection.Headers() {
				c.Set(name, value)
			}
			configslog.SLog.Warnf("Hız sınırı aşıldı: kapsam %s", key)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message":    rejection.Message,
				"retryAfter": rejection.RetryAfter,
			})
		}
		return c.Next()
	}
}
