package database

import (
	"evently.app/configs/configslog"
	"evently.app/database/migrations"
	"evently.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde çalıştırır.
// Bayrakların ikisi de kapalıysa hiçbir şey yapılmaz.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları bağımlılık sırasına göre migrate eder.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"User", migrations.MigrateUsersTable},
		{"EventType", migrations.MigrateEventTypesTable},
		{"Event", migrations.MigrateEventsTable},
		{"PublishedEvent", migrations.MigratePublishedEventsTables},
		{"EventHistory", migrations.MigrateEventHistoriesTable},
		{"VerificationCode", migrations.MigrateVerificationCodesTable},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.fn(db); err != nil {
			configslog.Log.Error(step.name+" migrasyonu başarısız oldu", zap.Error(err))
			return err
		}
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// RunSeeders seeder'ları sırayla çalıştırır.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedEventTypes(db); err != nil {
		return err
	}
	if err := seeders.SeedSampleEvents(db); err != nil {
		return err
	}
	configslog.SLog.Info("Tüm seeder'lar başarıyla çalıştırıldı.")
	return nil
}
