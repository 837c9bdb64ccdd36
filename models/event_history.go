package models

import "time"

// EventHistory süresi dolmuş bir etkinliğin anlık görüntüsü.
// FinishedAt süpürme görevinin çalıştığı andır; kayıt bu andan itibaren
// saklama süresi (varsayılan 48 saat) boyunca tutulur, sonra kalıcı silinir.
// EventID unique olduğu için süpürmenin art arda çalışması kayıt çoğaltmaz.
type EventHistory struct {
	BaseModel
	EventID    uint      `gorm:"uniqueIndex;not null" json:"eventId"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Location   string    `gorm:"type:varchar(255)" json:"location"`
	Date       string    `gorm:"type:varchar(10)" json:"date"`
	Time       string    `gorm:"type:varchar(5)" json:"time"`
	Type       string    `gorm:"type:varchar(50)" json:"type"`
	YesCount   int       `gorm:"type:integer;not null;default:0" json:"-"`
	NoCount    int       `gorm:"type:integer;not null;default:0" json:"-"`
	FinishedAt time.Time `gorm:"index;not null" json:"finishedAt"`
}
