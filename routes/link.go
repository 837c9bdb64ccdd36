package routes

import (
	link_handlers "evently.app/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRSVPRoutes paylaşım linklerinin (/rsvp/{id}) rotalarını tanımlar.
// HTML sayfası doğrudan linke gelen misafirler içindir; SPA aynı veriyi
// /api/rsvp/{id} üzerinden JSON olarak alır.
func registerPublicRSVPRoutes(app *fiber.App, api fiber.Router) {
	rsvpHandler := link_handlers.NewPublicRSVPHandler()

	app.Get("/rsvp/:id", rsvpHandler.ShowRSVPPage) // GET /rsvp/{id}
	app.Post("/rsvp/:id", rsvpHandler.SubmitRSVP)  // POST /rsvp/{id}

	api.Get("/rsvp/:id", rsvpHandler.GetPublishedEvent) // GET /api/rsvp/{id}
	api.Post("/rsvp/:id", rsvpHandler.SubmitRSVP)       // POST /api/rsvp/{id}
}
