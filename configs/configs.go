package configs

import (
	"os"
	"strconv"
	"time"

	"evently.app/configs/configsdatabase"
	"evently.app/configs/configslog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// AppConfig uygulama genel ayarlarını tutar. LoadConfig ile .env ve ortam
// değişkenlerinden doldurulur.
type AppConfig struct {
	Port             string        // HTTP portu
	BaseURL          string        // Paylaşım linklerinde kullanılan public adres
	UploadDir        string        // Etkinlik fotoğraflarının kaydedildiği dizin
	AllowedMailDomain string       // Doğrulama kodu gönderilebilecek e-posta alan adı
	CodeTTL          time.Duration // Doğrulama kodu geçerlilik süresi
	SweepInterval    time.Duration // Geçmiş süpürme görevinin periyodu
	HistoryRetention time.Duration // Geçmiş kayıtlarının saklanma süresi
}

var appConfig *AppConfig

// LoadConfig .env dosyasını (varsa) yükler ve AppConfig'i oluşturur.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err == nil {
		configslog.SLog.Info(".env dosyası yüklendi")
	}

	appConfig = &AppConfig{
		Port:              getEnv("APP_PORT", "8000"),
		BaseURL:           getEnv("APP_BASE_URL", "http://localhost:8000"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AllowedMailDomain: getEnv("ALLOWED_MAIL_DOMAIN", "gmail.com"),
		CodeTTL:           getDurationEnv("VERIFICATION_CODE_TTL", 10*time.Minute),
		SweepInterval:     getDurationEnv("HISTORY_SWEEP_INTERVAL", time.Minute),
		HistoryRetention:  getDurationEnv("HISTORY_RETENTION", 48*time.Hour),
	}
	return appConfig
}

// GetConfig yüklenmiş AppConfig'i döndürür, yüklenmemişse yükler.
func GetConfig() *AppConfig {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

// GetDB repository katmanının kullandığı DB erişim noktası.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	configslog.SLog.Warnf("Geçersiz süre değeri (%s=%s), varsayılan kullanılıyor", key, v)
	return fallback
}
