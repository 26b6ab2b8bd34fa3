package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
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

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:          "0123456789abcdef0123456789abcdef",
		AccessTokenMinutes: 30,
	}
}

// seedCommunity creates a parish with one community and returns the community.
func seedCommunity(t *testing.T, db *gorm.DB) *models.Community {
	t.Helper()
	parish := models.Parish{Name: "Paróquia Central"}
	if err := db.Create(&parish).Error; err != nil {
		t.Fatalf("Failed to create parish: %v", err)
	}
	community := models.Community{ParishID: parish.ID, Name: "Comunidade A"}
	if err := db.Create(&community).Error; err != nil {
		t.Fatalf("Failed to create community: %v", err)
	}
	return &community
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// doRequest executes a request against the app and decodes the JSON response
// body into out when out is non-nil.
func doRequest(t *testing.T, app *fiber.App, req *http.Request, out interface{}) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return resp
}
