// parishioner_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"strings"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"gorm.io/gorm"
)

// ParishionerFilter holds the optional list filters. Nil fields are omitted
// from the query entirely.
type ParishionerFilter struct {
	// Search matches case-insensitively as a substring against name,
	// phone, or email.
	Search      *string
	CommunityID *uint
	Active      *bool
}

// ParishionerInput carries the fields for creating a parishioner.
type ParishionerInput struct {
	CommunityID uint
	Name        string
	NationalID  *string
	Phone       *string
	Email       *string
	BirthDate   *models.Date
	Address     *string
	Active      bool
	Notes       *string
}

// ParishionerUpdate carries a partial update; nil fields are left untouched.
type ParishionerUpdate struct {
	CommunityID *uint
	Name        *string
	NationalID  *string
	Phone       *string
	Email       *string
	BirthDate   *models.Date
	Address     *string
	Active      *bool
	Notes       *string
}

// GetParishioner retrieves a parishioner by ID. Soft-deleted (inactive)
// parishioners remain retrievable.
func GetParishioner(db *gorm.DB, id uint) (*models.Parishioner, error) {
	var parishioner models.Parishioner
	if err := db.First(&parishioner, id).Error; err != nil {
		return nil, err
	}
	return &parishioner, nil
}

// GetParishioners returns one page of parishioners matching the filters,
// ordered by name, plus the total match count across all pages.
func GetParishioners(db *gorm.DB, page, pageSize int, filter ParishionerFilter) ([]models.Parishioner, int64, error) {
	query := db.Model(&models.Parishioner{})

	if filter.Search != nil {
		term := "%" + strings.ToLower(*filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			term, term, term,
		)
	}
	if filter.CommunityID != nil {
		query = query.Where("community_id = ?", *filter.CommunityID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var parishioners []models.Parishioner
	offset := (page - 1) * pageSize
	if err := query.Order("name").Offset(offset).Limit(pageSize).Find(&parishioners).Error; err != nil {
		return nil, 0, err
	}

	return parishioners, total, nil
}

// CreateParishioner creates a new parishioner. A duplicate national ID
// surfaces as a conflict error.
func CreateParishioner(db *gorm.DB, input ParishionerInput) (*models.Parishioner, error) {
	parishioner := models.Parishioner{
		CommunityID: input.CommunityID,
		Name:        input.Name,
		NationalID:  input.NationalID,
		Phone:       input.Phone,
		Email:       input.Email,
		BirthDate:   input.BirthDate,
		Address:     input.Address,
		Active:      input.Active,
		Notes:       input.Notes,
	}
	if err := db.Create(&parishioner).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, types.NewConflictError("national_id is already registered")
		}
		return nil, err
	}
	return &parishioner, nil
}

// UpdateParishioner applies a partial update to a parishioner.
func UpdateParishioner(db *gorm.DB, id uint, update ParishionerUpdate) (*models.Parishioner, error) {
	parishioner, err := GetParishioner(db, id)
	if err != nil {
		return nil, err
	}
	if update.CommunityID != nil {
		parishioner.CommunityID = *update.CommunityID
	}
	if update.Name != nil {
		parishioner.Name = *update.Name
	}
	if update.NationalID != nil {
		parishioner.NationalID = update.NationalID
	}
	if update.Phone != nil {
		parishioner.Phone = update.Phone
	}
	if update.Email != nil {
		parishioner.Email = update.Email
	}
	if update.BirthDate != nil {
		parishioner.BirthDate = update.BirthDate
	}
	if update.Address != nil {
		parishioner.Address = update.Address
	}
	if update.Active != nil {
		parishioner.Active = *update.Active
	}
	if update.Notes != nil {
		parishioner.Notes = update.Notes
	}
	if err := db.Save(parishioner).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, types.NewConflictError("national_id is already registered")
		}
		return nil, err
	}
	return parishioner, nil
}

// DeleteParishioner soft-deletes a parishioner by flipping the active flag.
// The row is retained and stays retrievable by ID.
func DeleteParishioner(db *gorm.DB, id uint) error {
	parishioner, err := GetParishioner(db, id)
	if err != nil {
		return err
	}
	return db.Model(parishioner).Update("active", false).Error
}
