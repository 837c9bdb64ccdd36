package handlers

import (
	"errors"
	"mime/multipart"

	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/pkg/queryparams"
	"evently.app/services"
	"evently.app/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler taslak etkinlik yönetimi (authoring + manage) için handler.
type EventHandler struct {
	service services.IEventService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler() *EventHandler {
	return &EventHandler{service: services.NewEventService()}
}

// eventJSON fotoğraf URL'ini ekleyerek API yanıtını üretir.
func eventJSON(event *models.Event) fiber.Map {
	return fiber.Map{
		"id":          event.ID,
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
		"photo":       event.Photo,
		"photoUrl":    utils.PhotoURL(event.Photo),
		"createdAt":   event.CreatedAt,
		"updatedAt":   event.UpdatedAt,
	}
}

// eventRequest hem JSON hem multipart form gövdelerini karşılar.
type eventRequest struct {
	Name        string `json:"name" form:"name"`
	Location    string `json:"location" form:"location"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
	Duration    string `json:"duration" form:"duration"`
	Capacity    int    `json:"capacity" form:"capacity"`
	Type        string `json:"type" form:"type"`
	Visibility  string `json:"visibility" form:"visibility"`
	Description string `json:"description" form:"description"`
	Organizer   string `json:"organizer" form:"organizer"`
}

// parseEventForm multipart/form veya JSON gövdesinden etkinlik alanlarını okur.
func parseEventForm(c *fiber.Ctx) (models.Event, *multipart.FileHeader, error) {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.Event{}, nil, err
	}
	event := models.Event{
		Name:        req.Name,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Type:        req.Type,
		Visibility:  req.Visibility,
		Description: req.Description,
		Organizer:   req.Organizer,
	}
	// Fotoğraf opsiyoneldir; multipart değilse FormFile hata verir, yoksayılır.
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}
	return event, photo, nil
}

// ListEvents (GET /api/events) taslakları listeler.
// page parametresi verilirse sayfalı sonuç döner, verilmezse düz liste
// (SPA'nın klasik çağrısı).
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	if c.Query("page") != "" {
		var params queryparams.ListParams
		if err := c.QueryParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters."})
		}
		result, err := h.service.GetEventsPaginated(c.UserContext(), params)
		if err != nil {
			configslog.Log.Error("ListEvents (paginated) Error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list events."})
		}
		return c.JSON(result)
	}

	events, err := h.service.GetAllEvents(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListEvents Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list events."})
	}
	payload := make([]fiber.Map, 0, len(events))
	for i := range events {
		payload = append(payload, eventJSON(&events[i]))
	}
	return c.JSON(payload)
}

// CreateEvent (POST /api/events) yeni taslak oluşturur.
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	event, photo, err := parseEventForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	created, err := h.service.CreateEvent(c.UserContext(), event, photo)
	if err != nil {
		return eventErrorResponse(c, err, "CreateEvent")
	}
	return c.Status(fiber.StatusCreated).JSON(eventJSON(created))
}

// GetEvent (GET /api/events/:id) tek taslağı getirir.
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}
	event, err := h.service.GetEventByID(c.UserContext(), uint(id))
	if err != nil {
		return eventErrorResponse(c, err, "GetEvent")
	}
	return c.JSON(eventJSON(event))
}

// UpdateEvent (PUT /api/events/:id) taslağı yerinde günceller.
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}
	event, photo, err := parseEventForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	updated, err := h.service.UpdateEvent(c.UserContext(), uint(id), event, photo)
	if err != nil {
		return eventErrorResponse(c, err, "UpdateEvent")
	}
	return c.JSON(eventJSON(updated))
}

// DeleteEvent (DELETE /api/events/:id) taslağı ve fotoğrafını siler.
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}
	if err := h.service.DeleteEvent(c.UserContext(), uint(id)); err != nil {
		return eventErrorResponse(c, err, "DeleteEvent")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PublishEvent (POST /api/events/:id/publish) taslağı yayınlar.
// Zaten yayındaysa mevcut kayıt döner, RSVP verisi sıfırlanmaz.
func (h *EventHandler) PublishEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id."})
	}
	published, err := h.service.PublishEvent(c.UserContext(), uint(id))
	if err != nil {
		return eventErrorResponse(c, err, "PublishEvent")
	}
	return c.JSON(fiber.Map{
		"eventId":   published.EventID,
		"shareLink": published.ShareLink,
		"rsvp":      published.RSVPTuple(),
		"message":   "Event published.",
	})
}

// eventErrorResponse servis hatalarını HTTP durum kodlarına çevirir.
func eventErrorResponse(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found."})
	case errors.Is(err, services.ErrEventNameRequired),
		errors.Is(err, services.ErrEventLocationRequired),
		errors.Is(err, services.ErrEventTypeRequired),
		errors.Is(err, services.ErrEventInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error(op+" Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}
}
