package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionType is the closed set of contribution kinds.
type ContributionType string

const (
	Tithe    ContributionType = "TITHE"
	Offering ContributionType = "OFFERING"
)

// ContributionTypes lists every declared type in stable order. Report
// aggregation iterates this list to backfill types with no rows in range.
var ContributionTypes = []ContributionType{Tithe, Offering}

// Valid reports whether t is one of the declared contribution types.
func (t ContributionType) Valid() bool {
	for _, known := range ContributionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Contribution is a single recorded payment attributed to a community and
// optionally to a parishioner (anonymous contributions carry a null
// parishioner). Deleting a parishioner nulls the reference; deleting the
// contribution itself is a hard delete.
type Contribution struct {
	ID               uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ParishionerID    *uint            `gorm:"index" json:"parishioner_id"`
	CommunityID      uint             `gorm:"not null;index" json:"community_id"`
	Type             ContributionType `gorm:"size:16;not null;index" json:"type"`
	Amount           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"amount"`
	ContributionDate Date             `gorm:"not null;index" json:"contribution_date"`
	PaymentMethod    *string          `gorm:"size:100" json:"payment_method"`
	ReferenceMonth   *string          `gorm:"size:7;index" json:"reference_month"`
	Notes            *string          `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	Parishioner *Parishioner `gorm:"foreignKey:ParishionerID;constraint:OnDelete:SET NULL" json:"-"`
	Community   *Community   `gorm:"foreignKey:CommunityID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName overrides the table name for Contribution
func (Contribution) TableName() string {
	return "contributions"
}
