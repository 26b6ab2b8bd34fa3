package models

import (
	"time"
)

// Community is a sub-unit of a parish. It owns parishioners and receives
// contributions; deletion is blocked while parishioners belong to it.
type Community struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParishID  uint      `gorm:"not null;index" json:"parish_id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Parish       *Parish       `gorm:"foreignKey:ParishID" json:"-"`
	Parishioners []Parishioner `gorm:"foreignKey:CommunityID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName overrides the table name for Community
func (Community) TableName() string {
	return "communities"
}
