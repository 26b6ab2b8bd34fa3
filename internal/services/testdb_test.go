package services

import (
	"testing"
	"time"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Parish{},
		&models.Community{},
		&models.Parishioner{},
		&models.Contribution{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// seedCommunity creates a parish with one community and returns the community.
func seedCommunity(t *testing.T, db *gorm.DB, parishName, communityName string) *models.Community {
	t.Helper()
	parish := models.Parish{Name: parishName}
	if err := db.Create(&parish).Error; err != nil {
		t.Fatalf("Failed to create parish: %v", err)
	}
	community := models.Community{ParishID: parish.ID, Name: communityName}
	if err := db.Create(&community).Error; err != nil {
		t.Fatalf("Failed to create community: %v", err)
	}
	return &community
}

// seedParishioner creates an active parishioner in the given community.
func seedParishioner(t *testing.T, db *gorm.DB, communityID uint, name string) *models.Parishioner {
	t.Helper()
	parishioner := models.Parishioner{CommunityID: communityID, Name: name, Active: true}
	if err := db.Create(&parishioner).Error; err != nil {
		t.Fatalf("Failed to create parishioner: %v", err)
	}
	return &parishioner
}

// seedContribution creates one contribution on the given date.
func seedContribution(t *testing.T, db *gorm.DB, parishionerID *uint, communityID uint, typ models.ContributionType, amount string, date time.Time) *models.Contribution {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("Bad amount %q: %v", amount, err)
	}
	contribution := models.Contribution{
		ParishionerID:    parishionerID,
		CommunityID:      communityID,
		Type:             typ,
		Amount:           amt,
		ContributionDate: models.NewDate(date),
	}
	if err := db.Create(&contribution).Error; err != nil {
		t.Fatalf("Failed to create contribution: %v", err)
	}
	return &contribution
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
