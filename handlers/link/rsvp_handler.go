package handlers

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/services"
	"evently.app/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicRSVPHandler paylaşım linkinden gelen RSVP isteklerini yönetir.
type PublicRSVPHandler struct {
	rsvpService services.IRSVPService
}

// NewPublicRSVPHandler yeni bir PublicRSVPHandler örneği oluşturur.
func NewPublicRSVPHandler() *PublicRSVPHandler {
	return &PublicRSVPHandler{rsvpService: services.NewRSVPService()}
}

// ShowRSVPPage (GET /rsvp/:id) yayınlanmış etkinliğin RSVP sayfasını gösterir.
func (h *PublicRSVPHandler) ShowRSVPPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.renderNotFound(c, "Invalid event link")
	}

	event, err := h.rsvpService.GetPublishedEvent(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRSVPEventNotFound) {
			return h.renderNotFound(c, "This event link is no longer active")
		}
		configslog.Log.Error("ShowRSVPPage Error", zap.Int("event_id", id), zap.Error(err))
		return h.renderError(c, "The event page could not be loaded.")
	}

	return c.Render("public/rsvp_view", fiber.Map{
		"Title":    event.Name,
		"Event":    event,
		"PhotoURL": utils.PhotoURL(event.Photo),
	}, "layouts/public_layout")
}

// GetPublishedEvent (GET /api/rsvp/:id) SPA için JSON karşılığı.
func (h *PublicRSVPHandler) GetPublishedEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}

	event, err := h.rsvpService.GetPublishedEvent(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRSVPEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Published event not found."})
		}
		configslog.Log.Error("GetPublishedEvent Error", zap.Int("event_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load event."})
	}
	return c.JSON(fiber.Map{
		"eventId":     event.EventID,
		"name":        event.Name,
		"location":    event.Location,
		"date":        event.Date,
		"time":        event.Time,
		"duration":    event.Duration,
		"capacity":    event.Capacity,
		"type":        event.Type,
		"visibility":  event.Visibility,
		"description": event.Description,
		"organizer":   event.Organizer,
		"photoUrl":    utils.PhotoURL(event.Photo),
		"shareLink":   event.ShareLink,
		"rsvp":        event.RSVPTuple(),
	})
}

type rsvpRequest struct {
	Email    string `json:"email" form:"email"`
	Response string `json:"response" form:"response"`
}

// SubmitRSVP (POST /rsvp/:id) misafirin yanıtını kaydeder.
// Aynı e-posta tekrar yanıt verirse önceki yanıtın yerine geçer; sayaçlar
// eski kovadan düşülüp yenisine eklenir. "Yes" yanıtı QR kod içeren bir
// sonuç döner.
func (h *PublicRSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}

	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	result, err := h.rsvpService.SubmitRSVP(c.UserContext(), uint(id), req.Email, models.RSVPResponse(req.Response))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRSVPEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Published event not found."})
		case errors.Is(err, services.ErrRSVPInvalidInput), errors.Is(err, services.ErrRSVPInvalidResponse):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A valid email and a response of Yes or No are required."})
		default:
			configslog.Log.Error("SubmitRSVP Error", zap.Int("event_id", id), zap.String("email", req.Email), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit RSVP."})
		}
	}
	return c.JSON(result)
}

func (h *PublicRSVPHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, "layouts/error_layout")
}

func (h *PublicRSVPHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Server Error",
		"Message": message,
	}, "layouts/error_layout")
}
