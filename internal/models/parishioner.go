package models

import (
	"time"
)

// Parishioner is a tracked member of a community who may contribute.
// Deletion is a soft delete: the row is retained with Active set to false.
type Parishioner struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID uint      `gorm:"not null;index" json:"community_id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	NationalID  *string   `gorm:"size:14;uniqueIndex" json:"national_id"`
	Phone       *string   `gorm:"size:20;index" json:"phone"`
	Email       *string   `gorm:"size:255;index" json:"email"`
	BirthDate   *Date     `gorm:"index" json:"birth_date"`
	Address     *string   `gorm:"type:text" json:"address"`
	Active      bool      `gorm:"not null;default:true;index" json:"active"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Community *Community `gorm:"foreignKey:CommunityID" json:"-"`
}

// TableName overrides the table name for Parishioner
func (Parishioner) TableName() string {
	return "parishioners"
}
