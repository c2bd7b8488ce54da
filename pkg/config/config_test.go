package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q, want %q", cfg.Database.Port, "5432")
	}
	if cfg.Database.DBName != "grana" {
		t.Errorf("Database.DBName = %q, want %q", cfg.Database.DBName, "grana")
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("JWT.Expiration = %v, want %v", cfg.JWT.Expiration, 24*time.Hour)
	}
	if cfg.OCR.Language != "por" {
		t.Errorf("OCR.Language = %q, want %q", cfg.OCR.Language, "por")
	}
	if cfg.OCR.UploadDir != "uploads" {
		t.Errorf("OCR.UploadDir = %q, want %q", cfg.OCR.UploadDir, "uploads")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("OCR_LANGUAGE", "eng")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("OCR.Language = %q, want %q", cfg.OCR.Language, "eng")
	}
	if cfg.JWT.Expiration != 2*time.Hour {
		t.Errorf("JWT.Expiration = %v, want %v", cfg.JWT.Expiration, 2*time.Hour)
	}
}
