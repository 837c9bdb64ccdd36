package models

// EventType etkinlik kategorilerini tutar. Seeder ile doldurulur.
type EventType struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

const (
	TypeNameConference = "Conference"
	TypeNameWorkshop   = "Workshop"
	TypeNameMeetup     = "Meetup"
	TypeNameSeminar    = "Seminar"
	TypeNameParty      = "Party"
	TypeNameOther      = "Other"
)
