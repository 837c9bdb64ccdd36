package models

import "time"

// Event taslak (henüz yayınlanmamış) bir etkinliği temsil eder.
// Tarih ve saat metin olarak tutulur; ikisi birden dolu ve geçerli
// olmadıkça etkinlik "süresiz aktif" kabul edilir (süpürme görevi dokunmaz).
type Event struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Location    string `gorm:"type:varchar(255);not null" json:"location"`
	Date        string `gorm:"type:varchar(10)" json:"date"` // YYYY-MM-DD
	Time        string `gorm:"type:varchar(5)" json:"time"`  // HH:MM
	Duration    string `gorm:"type:varchar(50)" json:"duration"`
	Capacity    int    `gorm:"type:integer" json:"capacity"`
	Type        string `gorm:"type:varchar(50);not null" json:"type"`
	Visibility  string `gorm:"type:varchar(20);not null;default:'public'" json:"visibility"`
	Description string `gorm:"type:text" json:"description"`
	Photo       string `gorm:"type:varchar(255)" json:"photo,omitempty"` // Kaydedilmiş dosya adı
	Organizer   string `gorm:"type:varchar(150)" json:"organizer,omitempty"`
}

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// eventMomentLayout tarih+saat birleşiminin parse formatı.
const eventMomentLayout = "2006-01-02T15:04"

// EventMoment date+time alanlarından etkinlik anını üretir.
// Alanlardan biri boşsa veya parse edilemiyorsa ok=false döner;
// bu durumda etkinlik hiçbir zaman geçmişe taşınmaz.
func EventMoment(date, clock string) (time.Time, bool) {
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(eventMomentLayout, date+"T"+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
