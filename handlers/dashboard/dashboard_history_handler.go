package handlers

import (
	"time"

	"evently.app/configs/configslog"
	"evently.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HistoryHandler biten etkinlik geçmişini yönetir.
type HistoryHandler struct {
	service services.IHistoryService
}

func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{service: services.NewHistoryService()}
}

// ListHistory (GET /api/history) geçmişteki etkinlikleri döner.
func (h *HistoryHandler) ListHistory(c *fiber.Ctx) error {
	entries, err := h.service.GetHistory(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListHistory Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load history."})
	}
	return c.JSON(entries)
}

// SweepNow (POST /api/history/sweep) süpürme turunu elle tetikler.
// Arka plandaki periyodik turla aynı işlemi çalıştırır; iki kez
// çağrılması ek kayıt taşımaz.
func (h *HistoryHandler) SweepNow(c *fiber.Ctx) error {
	report, err := h.service.SweepOnce(c.UserContext(), time.Now())
	if err != nil {
		configslog.Log.Error("SweepNow Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sweep failed."})
	}
	return c.JSON(report)
}

// ClearHistory (DELETE /api/history) geçmişi tamamen temizler.
func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.service.ClearHistory(c.UserContext()); err != nil {
		configslog.Log.Error("ClearHistory Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear history."})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
