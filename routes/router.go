package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- Rota Grupları ---
	api := app.Group("/api")
	registerAuthRoutes(api)      // /api/register, /api/login, doğrulama kodları
	registerPanelRoutes(api)     // /api/events (taslak CRUD + publish)
	registerDashboardRoutes(api) // /api/tracking, /api/checkin, /api/history

	// --- Public RSVP Rotaları ---
	// Paylaşım linkleri API gruplarından sonra gelir.
	registerPublicRSVPRoutes(app, api)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// notFoundHandler eşleşmeyen istekler için içerik tipine göre yanıt döner.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found."})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Not Found",
			"Message": "The page you are looking for does not exist.",
		}, "layouts/error_layout")
	}
}
