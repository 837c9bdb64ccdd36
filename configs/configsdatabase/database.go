package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"evently.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB ortam değişkenlerinden DSN oluşturup PostgreSQL bağlantısını açar.
// Bağlantı havuzu ayarları da burada yapılır.
func InitDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	name := getEnv("DB_NAME", "evently")
	sslMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, password, name, sslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true, // ErrDuplicatedKey gibi hataların yakalanabilmesi için
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı açılamadı", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = gormDB
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s:%s/%s", host, port, name)
}

// GetDB açık *gorm.DB örneğini döndürür. InitDB çağrılmadan kullanılamaz.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB çağrıldı fakat veritabanı başlatılmamış (InitDB unutuldu mu?)")
	}
	return db
}

// SetDB test ortamında (sqlite in-memory) bağlantıyı dışarıdan enjekte etmek için kullanılır.
func SetDB(d *gorm.DB) {
	db = d
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Bağlantı havuzu alınamadı, kapatma atlanıyor", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
