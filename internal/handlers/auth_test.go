package handlers_test

import (
	"testing"

	"github.com/ecclesiabr/ecclesia/internal/handlers"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.AuthHandler{DB: db, Cfg: testConfig()}
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/register", handler.Register)
	return app
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string, active bool) *models.User {
	t.Helper()
	user, err := services.CreateUser(db, services.CreateUserInput{
		Name:     "Test User",
		Email:    email,
		Password: password,
		Role:     models.RoleOperator,
		Active:   active,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestLoginHandler(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "operador@ecclesia.com", "Opera123!", true)
	app := newAuthApp(db)

	t.Run("valid credentials", func(t *testing.T) {
		var body struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"email":    "operador@ecclesia.com",
			"password": "Opera123!",
		}), &body)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if body.AccessToken == "" || body.TokenType != "bearer" {
			t.Errorf("body = %+v, want a bearer token", body)
		}

		// The issued token carries the user's email as subject
		claims, err := services.ParseAccessToken(testConfig(), body.AccessToken)
		if err != nil {
			t.Fatalf("ParseAccessToken failed: %v", err)
		}
		if claims.Subject != "operador@ecclesia.com" {
			t.Errorf("Subject = %q, want operador@ecclesia.com", claims.Subject)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"email":    "operador@ecclesia.com",
			"password": "wrong",
		}), nil)
		if resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"email":    "ghost@ecclesia.com",
			"password": "whatever",
		}), nil)
		if resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
			"email": "operador@ecclesia.com",
		}), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestLoginHandlerInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "inativo@ecclesia.com", "Inativo123!", false)
	app := newAuthApp(db)

	resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/login", map[string]string{
		"email":    "inativo@ecclesia.com",
		"password": "Inativo123!",
	}), nil)
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRegisterHandler(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	t.Run("defaults to active operator", func(t *testing.T) {
		var user map[string]interface{}
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/register", map[string]string{
			"name":     "Novo Operador",
			"email":    "novo@ecclesia.com",
			"password": "Novo123!",
		}), &user)
		if resp.StatusCode != 201 {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		if user["role"] != "OPERATOR" {
			t.Errorf("role = %v, want OPERATOR", user["role"])
		}
		if user["active"] != true {
			t.Errorf("active = %v, want true", user["active"])
		}
		if _, leaked := user["password_hash"]; leaked {
			t.Error("password hash leaked in response")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/register", map[string]string{
			"name":     "Duplicado",
			"email":    "novo@ecclesia.com",
			"password": "Dup123!",
		}), nil)
		if resp.StatusCode != 409 {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/register", map[string]string{
			"name":     "Papel Errado",
			"email":    "papel@ecclesia.com",
			"password": "Papel123!",
			"role":     "SUPERUSER",
		}), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, "POST", "/api/auth/register", map[string]string{
			"email": "sem-nome@ecclesia.com",
		}), nil)
		if resp.StatusCode != 400 {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}
