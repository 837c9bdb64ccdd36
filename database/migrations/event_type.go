package migrations

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/models"

	"gorm.io/gorm"
)

func MigrateEventTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("EventType tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.EventType{}); err != nil {
		errMsg := "EventType tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("EventType tablosu migrate işlemi tamamlandı.")
	return nil
}
