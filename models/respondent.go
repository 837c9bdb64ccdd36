package models

// RSVPResponse olası LCV yanıtlarını tanımlar.
type RSVPResponse string

const (
	RSVPYes RSVPResponse = "Yes"
	RSVPNo  RSVPResponse = "No"
)

// Valid yanıtın bilinen değerlerden biri olup olmadığını söyler.
func (r RSVPResponse) Valid() bool {
	return r == RSVPYes || r == RSVPNo
}

// Respondent bir yayınlanmış etkinliğe verilen LCV yanıtı.
// (PublishedEventID, Email) çifti unique'tir: aynı e-posta ikinci kez yanıt
// verdiğinde kayıt çoğaltılmaz, üzerine yazılır.
type Respondent struct {
	BaseModel
	PublishedEventID uint         `gorm:"not null;index:idx_resp_event_email,unique" json:"-"`
	Email            string       `gorm:"type:varchar(150);not null;index:idx_resp_event_email,unique" json:"email"`
	Response         RSVPResponse `gorm:"type:varchar(5);not null" json:"response"`
}
