package seeders

import (
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSampleEvents geliştirme ortamı için örnek taslak etkinlikler oluşturur.
// Events tablosu boş değilse hiçbir şey yapmaz.
func SeedSampleEvents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Events tablosu sayımı başarısız", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Events tablosu dolu, örnek etkinlik seed atlanıyor.")
		return nil
	}

	events := []models.Event{
		{
			Name:        "Tech Conference 2025",
			Location:    "San Francisco Convention Center",
			Date:        "2025-03-15",
			Time:        "09:00",
			Duration:    "8 hours",
			Capacity:    500,
			Type:        models.TypeNameConference,
			Visibility:  models.VisibilityPublic,
			Description: "Annual technology conference featuring keynote speeches, workshops, and networking opportunities.",
			Organizer:   "Tech Events Inc.",
		},
		{
			Name:        "Summer Music Festival",
			Location:    "Central Park, New York",
			Date:        "2025-06-20",
			Time:        "17:00",
			Duration:    "6 hours",
			Capacity:    1000,
			Type:        models.TypeNameParty,
			Visibility:  models.VisibilityPublic,
			Description: "A vibrant music festival featuring local and international artists across multiple stages.",
			Organizer:   "City Entertainment",
		},
		{
			Name:        "Corporate Team Building",
			Location:    "Downtown Hotel Ballroom",
			Date:        "2025-02-10",
			Time:        "18:30",
			Duration:    "4 hours",
			Capacity:    150,
			Type:        models.TypeNameMeetup,
			Visibility:  models.VisibilityPrivate,
			Description: "Team building activities and networking dinner for company employees.",
			Organizer:   "XYZ Corporation HR",
		},
	}

	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			configslog.Log.Error("Örnek etkinlik oluşturulamadı",
				zap.String("event_name", events[i].Name), zap.Error(err))
			return err
		}
	}

	configslog.SLog.Infof("%d adet örnek etkinlik seed edildi.", len(events))
	return nil
}
