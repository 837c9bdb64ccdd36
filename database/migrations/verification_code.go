package migrations

import (
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateVerificationCodesTable(db *gorm.DB) error {
	configslog.SLog.Info("VerificationCode tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.VerificationCode{}); err != nil {
		configslog.Log.Error("VerificationCode tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("VerificationCode tablosu migrate işlemi tamamlandı.")
	return nil
}
