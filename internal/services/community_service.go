// community_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"fmt"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"gorm.io/gorm"
)

// CommunityInput carries the fields for creating a community.
type CommunityInput struct {
	ParishID uint
	Name     string
}

// CommunityUpdate carries a partial update; nil fields are left untouched.
type CommunityUpdate struct {
	ParishID *uint
	Name     *string
}

// GetCommunity retrieves a community by ID.
func GetCommunity(db *gorm.DB, id uint) (*models.Community, error) {
	var community models.Community
	if err := db.First(&community, id).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// GetCommunities retrieves communities ordered by name, optionally filtered
// by parish.
func GetCommunities(db *gorm.DB, parishID *uint) ([]models.Community, error) {
	query := db.Model(&models.Community{})
	if parishID != nil {
		query = query.Where("parish_id = ?", *parishID)
	}
	var communities []models.Community
	if err := query.Order("name").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

// CreateCommunity creates a new community under a parish.
func CreateCommunity(db *gorm.DB, input CommunityInput) (*models.Community, error) {
	community := models.Community{ParishID: input.ParishID, Name: input.Name}
	if err := db.Create(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// UpdateCommunity applies a partial update to a community.
func UpdateCommunity(db *gorm.DB, id uint, update CommunityUpdate) (*models.Community, error) {
	community, err := GetCommunity(db, id)
	if err != nil {
		return nil, err
	}
	if update.ParishID != nil {
		community.ParishID = *update.ParishID
	}
	if update.Name != nil {
		community.Name = *update.Name
	}
	if err := db.Save(community).Error; err != nil {
		return nil, err
	}
	return community, nil
}

// DeleteCommunity deletes a community. The delete is blocked with a conflict
// error while parishioners still belong to it. The count-then-delete pair is
// not locked; a concurrent insert racing the check is an accepted hazard for
// this tool.
func DeleteCommunity(db *gorm.DB, id uint) error {
	community, err := GetCommunity(db, id)
	if err != nil {
		return err
	}

	var parishioners int64
	if err := db.Model(&models.Parishioner{}).Where("community_id = ?", id).Count(&parishioners).Error; err != nil {
		return err
	}
	if parishioners > 0 {
		return types.NewConflictError(fmt.Sprintf("cannot delete community: %d dependent parishioners exist", parishioners))
	}

	return db.Delete(community).Error
}
