package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"evently.app/configs"
	"evently.app/configs/configsdatabase"
	"evently.app/configs/configslog"
	"evently.app/routes"
	"evently.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:     engine,
		AppName:   "Evently",
		BodyLimit: 10 * 1024 * 1024, // Fotoğraf yüklemeleri için
	})

	// Yüklenen fotoğraflar doğrudan servis edilir.
	app.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(app)

	// Periyodik geçmiş süpürücüsü: tarihi+saati geçmiş yayınlar geçmişe
	// taşınır, saklama süresi dolanlar silinir.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	historyService := services.NewHistoryService()
	go historyService.Run(sweepCtx)

	go func() {
		configslog.Log.Info("Sunucu başlatılıyor", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.Log.Info("Kapatma sinyali alındı, sunucu durduruluyor")
	stopSweep()
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
	configslog.Log.Info("Sunucu durduruldu")
}
