package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DATABASE", "ecclesia")
	t.Setenv("DB_USER", "ecclesia")
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.DBType != "postgres" {
		t.Errorf("DBType = %q, want postgres", cfg.DBType)
	}
	if cfg.AccessTokenMinutes != 30 {
		t.Errorf("AccessTokenMinutes = %d, want 30", cfg.AccessTokenMinutes)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("AllowedOrigins is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com , https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBType != "mysql" || cfg.AccessTokenMinutes != 60 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v, want trimmed two-entry list", cfg.AllowedOrigins)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DATABASE", "")

	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DB_DATABASE")
	}
}

func TestLoadSqliteSkipsUserCheck(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "/tmp/ecclesia.db")
	t.Setenv("DB_USER", "")

	if _, err := Load(); err != nil {
		t.Errorf("Load failed for sqlite without DB_USER: %v", err)
	}
}

func TestValidateSecretKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"empty", "", true},
		{"too short", "short", true},
		{"31 characters", strings.Repeat("a", 31), true},
		{"32 characters", strings.Repeat("a", 32), false},
		{"known weak value", "your-secret-key-change-in-production", true},
		{"strong key", "0123456789abcdef0123456789abcdef", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSecretKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSecretKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
