package migrations

import (
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEventHistoriesTable(db *gorm.DB) error {
	configslog.SLog.Info("EventHistory tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.EventHistory{}); err != nil {
		configslog.Log.Error("EventHistory tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("EventHistory tablosu migrate işlemi tamamlandı.")
	return nil
}
