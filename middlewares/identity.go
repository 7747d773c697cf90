package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userIDLocal = "userID"

// Identity önündeki kimlik doğrulama proxy'sinin yazdığı başlıktan kullanıcıyı okur.
// Başlık yoksa istek anonim kabul edilir.
func Identity(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := strings.TrimSpace(c.Get(header)); userID != "" {
			c.Locals(userIDLocal, userID)
		}
		return c.Next()
	}
}

// UserID isteği yapan kullanıcının kimliğini döner; anonimse boş.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDLocal).(string)
	return userID
}

// AuthMiddleware oturum açmamış istekleri 401 ile reddeder.
func AuthMiddleware(c *fiber.Ctx) error {
	if UserID(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required."})
	}
	return c.Next()
}
