package handlers

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler yayınlanmış etkinliklerin katılım istatistiklerini sunar.
type TrackingHandler struct {
	service services.ITrackService
}

func NewTrackingHandler() *TrackingHandler {
	return &TrackingHandler{service: services.NewTrackService()}
}

// ListTracking (GET /api/track) tüm yayınlanmış etkinliklerin özetini döner.
func (h *TrackingHandler) ListTracking(c *fiber.Ctx) error {
	tracking, err := h.service.GetAllTracking(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListTracking Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tracking data."})
	}
	return c.JSON(tracking)
}

// GetTracking (GET /api/track/:id) tek etkinliğin istatistiklerini döner.
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}
	tracking, err := h.service.GetTracking(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTrackEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Published event not found."})
		}
		configslog.Log.Error("GetTracking Error", zap.Error(err), zap.Int("event_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tracking data."})
	}
	return c.JSON(tracking)
}
