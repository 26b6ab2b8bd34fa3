package models

import (
	"time"
)

// Parish is the top-level organizational unit. A parish owns communities and
// cannot be deleted while any remain.
type Parish struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Communities []Community `gorm:"foreignKey:ParishID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName overrides the table name for Parish
func (Parish) TableName() string {
	return "parishes"
}
