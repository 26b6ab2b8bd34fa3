// parish_service.go
//
// Ecclesia parish tithe and membership management service.

package services

import (
	"fmt"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"gorm.io/gorm"
)

// ParishUpdate carries a partial update; nil fields are left untouched.
type ParishUpdate struct {
	Name *string
}

// GetParish retrieves a parish by ID.
func GetParish(db *gorm.DB, id uint) (*models.Parish, error) {
	var parish models.Parish
	if err := db.First(&parish, id).Error; err != nil {
		return nil, err
	}
	return &parish, nil
}

// GetParishes retrieves all parishes ordered by name.
func GetParishes(db *gorm.DB) ([]models.Parish, error) {
	var parishes []models.Parish
	if err := db.Order("name").Find(&parishes).Error; err != nil {
		return nil, err
	}
	return parishes, nil
}

// CreateParish creates a new parish.
func CreateParish(db *gorm.DB, name string) (*models.Parish, error) {
	parish := models.Parish{Name: name}
	if err := db.Create(&parish).Error; err != nil {
		return nil, err
	}
	return &parish, nil
}

// UpdateParish applies a partial update to a parish.
func UpdateParish(db *gorm.DB, id uint, update ParishUpdate) (*models.Parish, error) {
	parish, err := GetParish(db, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		parish.Name = *update.Name
	}
	if err := db.Save(parish).Error; err != nil {
		return nil, err
	}
	return parish, nil
}

// DeleteParish deletes a parish. The delete is blocked with a conflict error
// while the parish still owns communities.
func DeleteParish(db *gorm.DB, id uint) error {
	parish, err := GetParish(db, id)
	if err != nil {
		return err
	}

	var communities int64
	if err := db.Model(&models.Community{}).Where("parish_id = ?", id).Count(&communities).Error; err != nil {
		return err
	}
	if communities > 0 {
		return types.NewConflictError(fmt.Sprintf("cannot delete parish: %d dependent communities exist", communities))
	}

	return db.Delete(parish).Error
}
