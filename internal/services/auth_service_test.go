package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:          "0123456789abcdef0123456789abcdef",
		AccessTokenMinutes: 30,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Admin123!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Admin123!" {
		t.Fatal("hash equals the plaintext password")
	}
	if !VerifyPassword("Admin123!", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordLongInput(t *testing.T) {
	// bcrypt caps input at 72 bytes; longer passwords must still hash and
	// verify rather than error out.
	long := strings.Repeat("x", 100)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword failed on long input: %v", err)
	}
	if !VerifyPassword(long, hash) {
		t.Error("long password rejected against its own hash")
	}
}

func TestAuthenticateUser(t *testing.T) {
	db := setupTestDB(t)
	cfgUser, err := CreateUser(db, CreateUserInput{
		Name:     "Admin",
		Email:    "admin@ecclesia.com",
		Password: "Admin123!",
		Role:     models.RoleAdmin,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		user, err := AuthenticateUser(db, "admin@ecclesia.com", "Admin123!")
		if err != nil {
			t.Fatalf("AuthenticateUser failed: %v", err)
		}
		if user == nil || user.ID != cfgUser.ID {
			t.Errorf("user = %+v, want the created admin", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := AuthenticateUser(db, "admin@ecclesia.com", "nope")
		if err != nil {
			t.Fatalf("AuthenticateUser failed: %v", err)
		}
		if user != nil {
			t.Error("wrong password authenticated")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		user, err := AuthenticateUser(db, "ghost@ecclesia.com", "Admin123!")
		if err != nil {
			t.Fatalf("AuthenticateUser failed: %v", err)
		}
		if user != nil {
			t.Error("unknown email authenticated")
		}
	})
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	input := CreateUserInput{
		Name:     "Operador",
		Email:    "operador@ecclesia.com",
		Password: "Opera123!",
		Role:     models.RoleOperator,
		Active:   true,
	}
	if _, err := CreateUser(db, input); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := CreateUser(db, input)
	var customErr *types.CustomError
	if !errors.As(err, &customErr) || customErr.Code != 409 {
		t.Errorf("err = %v, want conflict error", err)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	user := &models.User{Name: "Admin", Email: "admin@ecclesia.com"}
	user.ID = 7

	token, err := CreateAccessToken(cfg, user)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if claims.Subject != "admin@ecclesia.com" {
		t.Errorf("Subject = %q, want admin@ecclesia.com", claims.Subject)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
}

func TestParseAccessTokenRejectsBadInput(t *testing.T) {
	cfg := testConfig()
	user := &models.User{Email: "admin@ecclesia.com"}
	token, err := CreateAccessToken(cfg, user)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := ParseAccessToken(cfg, "not.a.token"); err == nil {
			t.Error("garbage token accepted")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := testConfig()
		other.SecretKey = "ffffffffffffffffffffffffffffffff"
		if _, err := ParseAccessToken(other, token); err == nil {
			t.Error("token signed with another key accepted")
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		tampered := token[:len(token)-2] + "xx"
		if _, err := ParseAccessToken(cfg, tampered); err == nil {
			t.Error("tampered token accepted")
		}
	})
}
