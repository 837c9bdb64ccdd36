package models

// User kayıtlı bir kullanıcıyı temsil eder.
// Parola bcrypt ile hashlenir; düz metin hiçbir katmanda saklanmaz.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
