package services

import (
	"testing"

	"evently.app/configs/configsdatabase"
	"evently.app/configs/configslog"
	"evently.app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB her test için izole bir in-memory sqlite veritabanı kurar ve
// global DB erişim noktasına bağlar. Tek bağlantı zorunlu: sqlite'ın
// :memory: veritabanı bağlantı başına ayrıdır.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configslog.InitLogger()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.EventType{},
		&models.Event{},
		&models.PublishedEvent{},
		&models.Respondent{},
		&models.Attendee{},
		&models.CheckIn{},
		&models.EventHistory{},
		&models.VerificationCode{},
	); err != nil {
		t.Fatalf("test migration başarısız: %v", err)
	}

	configsdatabase.SetDB(db)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// publishTestEvent testler için doğrudan yayınlanmış etkinlik kaydı açar.
func publishTestEvent(t *testing.T, db *gorm.DB, eventID uint, name, date, clock string) *models.PublishedEvent {
	t.Helper()
	published := &models.PublishedEvent{
		EventID:   eventID,
		Name:      name,
		Location:  "Test Hall",
		Date:      date,
		Time:      clock,
		Type:      models.TypeNameConference,
		ShareLink: "http://localhost:8000/rsvp/" + name,
	}
	if err := db.Create(published).Error; err != nil {
		t.Fatalf("yayınlanmış etkinlik oluşturulamadı: %v", err)
	}
	return published
}
