package models

import (
	"strings"
	"time"
)

// AttendeeStatus katılım durumunu tanımlar.
type AttendeeStatus string

const (
	AttendeePresent AttendeeStatus = "Present"
	AttendeeAbsent  AttendeeStatus = "Absent"
)

// Attendee QR okutma ile işaretlenmiş bir katılımcı.
// (PublishedEventID, Email) unique: aynı kodun ikinci okutulması kayıt da
// sayaç da değiştirmez.
type Attendee struct {
	BaseModel
	PublishedEventID uint           `gorm:"not null;index:idx_att_event_email,unique" json:"-"`
	Name             string         `gorm:"type:varchar(150)" json:"name"`
	Email            string         `gorm:"type:varchar(150);not null;index:idx_att_event_email,unique" json:"email"`
	Status           AttendeeStatus `gorm:"type:varchar(10);not null;default:'Present'" json:"status"`
}

// CheckIn her başarılı okutma için bir satır tutan katılım günlüğü.
// "Katılım serisi" bu günlükten gün bazında toplanarak üretilir, toplam
// sayaç da satır sayısıdır; iki anlamın tek listede karışması böyle çözülür.
type CheckIn struct {
	BaseModel
	PublishedEventID uint      `gorm:"not null;index" json:"-"`
	Email            string    `gorm:"type:varchar(150);not null" json:"email"`
	ScannedAt        time.Time `gorm:"index;not null" json:"scannedAt"`
}

// NameFromEmail isim verilmediğinde e-postanın yerel kısmından isim türetir.
func NameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
