// contribution_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionFilter holds the optional list filters. Nil fields are omitted
// from the query entirely. StartDate and EndDate bound the contribution date
// inclusively and are independently optional.
type ContributionFilter struct {
	ParishionerID *uint
	CommunityID   *uint
	Type          *models.ContributionType
	StartDate     *models.Date
	EndDate       *models.Date
}

// ContributionInput carries the fields for creating a contribution.
type ContributionInput struct {
	ParishionerID    *uint
	CommunityID      uint
	Type             models.ContributionType
	Amount           decimal.Decimal
	ContributionDate models.Date
	PaymentMethod    *string
	ReferenceMonth   *string
	Notes            *string
}

// ContributionUpdate carries a partial update; nil fields are left untouched.
type ContributionUpdate struct {
	ParishionerID    *uint
	CommunityID      *uint
	Type             *models.ContributionType
	Amount           *decimal.Decimal
	ContributionDate *models.Date
	PaymentMethod    *string
	ReferenceMonth   *string
	Notes            *string
}

// GetContribution retrieves a contribution by ID.
func GetContribution(db *gorm.DB, id uint) (*models.Contribution, error) {
	var contribution models.Contribution
	if err := db.First(&contribution, id).Error; err != nil {
		return nil, err
	}
	return &contribution, nil
}

// GetContributions returns one page of contributions matching the filters,
// most recent first (ties broken by descending ID for deterministic pages),
// plus the total match count across all pages.
func GetContributions(db *gorm.DB, page, pageSize int, filter ContributionFilter) ([]models.Contribution, int64, error) {
	query := db.Model(&models.Contribution{})

	if filter.ParishionerID != nil {
		query = query.Where("parishioner_id = ?", *filter.ParishionerID)
	}
	if filter.CommunityID != nil {
		query = query.Where("community_id = ?", *filter.CommunityID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.StartDate != nil {
		query = query.Where("contribution_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("contribution_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contributions []models.Contribution
	offset := (page - 1) * pageSize
	if err := query.Order("contribution_date DESC, id DESC").Offset(offset).Limit(pageSize).Find(&contributions).Error; err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

// CreateContribution creates a new contribution. Amount and reference-month
// validation happens at the boundary before the service is reached.
func CreateContribution(db *gorm.DB, input ContributionInput) (*models.Contribution, error) {
	contribution := models.Contribution{
		ParishionerID:    input.ParishionerID,
		CommunityID:      input.CommunityID,
		Type:             input.Type,
		Amount:           input.Amount,
		ContributionDate: input.ContributionDate,
		PaymentMethod:    input.PaymentMethod,
		ReferenceMonth:   input.ReferenceMonth,
		Notes:            input.Notes,
	}
	if err := db.Create(&contribution).Error; err != nil {
		return nil, err
	}
	return &contribution, nil
}

// UpdateContribution applies a partial update to a contribution.
func UpdateContribution(db *gorm.DB, id uint, update ContributionUpdate) (*models.Contribution, error) {
	contribution, err := GetContribution(db, id)
	if err != nil {
		return nil, err
	}
	if update.ParishionerID != nil {
		contribution.ParishionerID = update.ParishionerID
	}
	if update.CommunityID != nil {
		contribution.CommunityID = *update.CommunityID
	}
	if update.Type != nil {
		contribution.Type = *update.Type
	}
	if update.Amount != nil {
		contribution.Amount = *update.Amount
	}
	if update.ContributionDate != nil {
		contribution.ContributionDate = *update.ContributionDate
	}
	if update.PaymentMethod != nil {
		contribution.PaymentMethod = update.PaymentMethod
	}
	if update.ReferenceMonth != nil {
		contribution.ReferenceMonth = update.ReferenceMonth
	}
	if update.Notes != nil {
		contribution.Notes = update.Notes
	}
	if err := db.Save(contribution).Error; err != nil {
		return nil, err
	}
	return contribution, nil
}

// DeleteContribution hard-deletes a contribution.
func DeleteContribution(db *gorm.DB, id uint) error {
	contribution, err := GetContribution(db, id)
	if err != nil {
		return err
	}
	return db.Delete(contribution).Error
}
