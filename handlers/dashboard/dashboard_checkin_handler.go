package handlers

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckInHandler QR tarama sonuçlarını işleyen handler.
type CheckInHandler struct {
	service services.ICheckInService
}

func NewCheckInHandler() *CheckInHandler {
	return &CheckInHandler{service: services.NewCheckInService()}
}

type scanRequest struct {
	Payload string `json:"payload" form:"payload"`
}

// Scan (POST /api/checkin) taranan QR içeriğini değerlendirir.
// Tanınan katılım yükleri katılımcıyı Present olarak işaretler; diğer
// biçimler yalnızca çözümlenmiş içerikle döner, veri değiştirilmez.
func (h *CheckInHandler) Scan(c *fiber.Ctx) error {
	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	result, err := h.service.ProcessScan(c.UserContext(), req.Payload)
	if err != nil {
		if errors.Is(err, services.ErrCheckInEmptyPayload) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Scanned payload is empty."})
		}
		configslog.Log.Error("Scan Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process scan."})
	}
	return c.JSON(result)
}
