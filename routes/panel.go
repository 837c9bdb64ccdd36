package routes

import (
	panel_handlers "evently.app/handlers/panel"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes taslak etkinlik yönetimi rotalarını tanımlar.
func registerPanelRoutes(api fiber.Router) {
	eventHandler := panel_handlers.NewEventHandler()

	api.Get("/events", eventHandler.ListEvents)               // GET /api/events
	api.Post("/events", eventHandler.CreateEvent)             // POST /api/events
	api.Get("/events/:id", eventHandler.GetEvent)             // GET /api/events/{id}
	api.Put("/events/:id", eventHandler.UpdateEvent)          // PUT /api/events/{id}
	api.Post("/events/:id", eventHandler.UpdateEvent)         // POST /api/events/{id} (multipart + _method=PUT istemcileri için)
	api.Delete("/events/:id", eventHandler.DeleteEvent)       // DELETE /api/events/{id}
	api.Post("/events/:id/publish", eventHandler.PublishEvent) // POST /api/events/{id}/publish
}
