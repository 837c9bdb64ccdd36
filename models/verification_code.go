package models

import "time"

// VerificationCode e-posta başına sunucu tarafında tutulan 6 haneli kod.
// Tek kullanımlıktır: başarılı doğrulamada silinir. Attempts başarısız deneme
// sayısıdır; sınır aşılınca kod geçersiz sayılır (sınırsız deneme açığına
// karşı üst sınır).
type VerificationCode struct {
	BaseModel
	Email     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	Attempts  int       `gorm:"type:integer;not null;default:0" json:"-"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expiresAt"`
}

// Expired kodun süresinin dolup dolmadığını söyler.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
