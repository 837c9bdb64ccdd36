package models

// PublishedEvent yayınlanmış bir etkinliği temsil eder: taslağın anlık
// kopyası + paylaşım linki + RSVP sayaçları.
//
// Değişmez kural: (YesCount, NoCount) her an respondents tablosundan yeniden
// hesaplanan değerlere eşit olmalıdır. Sayaçları mutasyona uğratan her yol
// önce eski kovayı azaltıp sonra yenisini artırır; körlemesine increment yok.
type PublishedEvent struct {
	BaseModel
	EventID     uint   `gorm:"uniqueIndex;not null" json:"eventId"` // Taslak etkinliğin ID'si
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Location    string `gorm:"type:varchar(255)" json:"location"`
	Date        string `gorm:"type:varchar(10)" json:"date"`
	Time        string `gorm:"type:varchar(5)" json:"time"`
	Duration    string `gorm:"type:varchar(50)" json:"duration"`
	Capacity    int    `gorm:"type:integer" json:"capacity"`
	Type        string `gorm:"type:varchar(50)" json:"type"`
	Visibility  string `gorm:"type:varchar(20)" json:"visibility"`
	Description string `gorm:"type:text" json:"description"`
	Photo       string `gorm:"type:varchar(255)" json:"photo,omitempty"`
	Organizer   string `gorm:"type:varchar(150)" json:"organizer,omitempty"`
	ShareLink   string `gorm:"type:varchar(500);not null" json:"shareLink"`
	YesCount    int    `gorm:"type:integer;not null;default:0" json:"-"`
	NoCount     int    `gorm:"type:integer;not null;default:0" json:"-"`

	Respondents []Respondent `gorm:"foreignKey:PublishedEventID" json:"respondents,omitempty"`
	Attendees   []Attendee   `gorm:"foreignKey:PublishedEventID" json:"attendees,omitempty"`
	CheckIns    []CheckIn    `gorm:"foreignKey:PublishedEventID" json:"-"`
}

// RSVPTuple frontend'in beklediği [yes, no] biçimi.
func (p *PublishedEvent) RSVPTuple() [2]int {
	return [2]int{p.YesCount, p.NoCount}
}
