package routes

import (
	handlers "evently.app/handlers/dashboard"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes izleme, yoklama ve geçmiş rotalarını tanımlar.
func registerDashboardRoutes(api fiber.Router) {
	trackingHandler := handlers.NewTrackingHandler()
	checkInHandler := handlers.NewCheckInHandler()
	historyHandler := handlers.NewHistoryHandler()

	// --- Katılım İzleme ---
	api.Get("/track", trackingHandler.ListTracking)    // GET /api/track
	api.Get("/track/:id", trackingHandler.GetTracking) // GET /api/track/{id}

	// --- QR Yoklama ---
	api.Post("/checkin", checkInHandler.Scan) // POST /api/checkin

	// --- Etkinlik Geçmişi ---
	api.Get("/history", historyHandler.ListHistory)      // GET /api/history
	api.Post("/history/sweep", historyHandler.SweepNow)  // POST /api/history/sweep
	api.Delete("/history", historyHandler.ClearHistory)  // DELETE /api/history
}
