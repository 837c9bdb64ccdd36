package migrations

import (
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePublishedEventsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating published_events, respondents, attendees & check_ins tables...")
	err := db.AutoMigrate(
		&models.PublishedEvent{},
		&models.Respondent{},
		&models.Attendee{},
		&models.CheckIn{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate published event tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Published event tables migrated successfully")
	return nil
}
