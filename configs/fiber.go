// Package configs fiber uygulamasının ve görünüm motorunun ayarlarını üretir.
package configs

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"chodae.link/configs/configsenv"
	"chodae.link/configs/configslog"
	"chodae.link/pkg/formatter"
	"chodae.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// NewViewEngine gömülü şablonlardan html motorunu kurar ve biçimlendirme fonksiyonlarını ekler.
func NewViewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.AddFunc("formatDate", formatter.FormatDate)
	engine.AddFunc("formatDateWithDay", formatter.FormatDateWithDay)
	engine.AddFunc("formatTime", formatter.FormatTime)
	engine.AddFunc("formatPhone", formatter.FormatPhone)
	engine.AddFunc("unformatPhone", formatter.UnformatPhone)
	engine.AddFunc("formatAddress", formatter.FormatAddress)
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	return engine
}

// NewFiberConfig uygulama ayarlarından fiber.Config üretir.
func NewFiberConfig(cfg configsenv.Config, views fiber.Views) fiber.Config {
	return fiber.Config{
		AppName:               "chodae.link",
		Views:                 views,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	}
}

// ErrorHandler işlenmemiş hataları /api altında JSON, diğer yollarda düz metin olarak döner.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"message": message})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}
