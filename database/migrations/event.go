package migrations

import (
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEventsTable(db *gorm.DB) error {
	configslog.SLog.Info("Events tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		configslog.Log.Error("Events tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Events tablosu migrate işlemi tamamlandı.")
	return nil
}
