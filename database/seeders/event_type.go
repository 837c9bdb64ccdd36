package seeders

import (
	"errors"

	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedEventTypes etkinlik kategorilerini oluşturur. Mevcut kayıtlar atlanır,
// seeder tekrar tekrar güvenle çalıştırılabilir.
func SeedEventTypes(db *gorm.DB) error {
	typesToSeed := []models.EventType{
		{Name: models.TypeNameConference, Description: "Konferans etkinlikleri"},
		{Name: models.TypeNameWorkshop, Description: "Atölye çalışmaları"},
		{Name: models.TypeNameMeetup, Description: "Topluluk buluşmaları"},
		{Name: models.TypeNameSeminar, Description: "Seminerler"},
		{Name: models.TypeNameParty, Description: "Parti ve kutlamalar"},
		{Name: models.TypeNameOther, Description: "Diğer etkinlikler"},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Etkinlik kategorileri seed işlemi başlıyor...")

	for _, typeToSeed := range typesToSeed {
		var existingType models.EventType
		result := db.Where("name = ?", typeToSeed.Name).First(&existingType)

		if result.Error == nil {
			configslog.SLog.Debugf("Kategori '%s' zaten mevcut, oluşturma atlanıyor.", typeToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kategori kontrol edilirken veritabanı hatası",
				zap.String("type_name", typeToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.Create(&typeToSeed).Error; err != nil {
			configslog.Log.Error("Kategori oluşturulamadı",
				zap.String("type_name", typeToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni kategori seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm kategoriler zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("kategoriler seed edilirken en az bir hata oluştu")
	}
	return nil
}
