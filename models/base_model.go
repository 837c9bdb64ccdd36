package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm modellerin gömdüğü ortak alanlar.
// Soft delete için gorm.DeletedAt kullanılır.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
