package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com")

	cfg, err := Load("does-not-exist.env")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.MongoDB.DBName != "obrador" {
		t.Errorf("unexpected db name %q", cfg.MongoDB.DBName)
	}
	if cfg.Pricing.DefaultMargin != 0.3 {
		t.Errorf("unexpected default margin %v", cfg.Pricing.DefaultMargin)
	}
	if cfg.SheetsEnabled() {
		t.Error("sheets export must be disabled by default")
	}
}

func TestLoadRequiresIdentityBaseURL(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "")

	if _, err := Load("does-not-exist.env"); err == nil {
		t.Fatal("expected error without IDENTITY_BASE_URL")
	}
}

func TestValidateRejectsHalfSheetsConfig(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com")
	t.Setenv("GOOGLE_SHEET_EXPORT_ID", "sheet-id")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "")

	if _, err := Load("does-not-exist.env"); err == nil {
		t.Fatal("expected error for spreadsheet id without credentials")
	}
}

func TestLoadRejectsBadMargin(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com")
	t.Setenv("PRICING_DEFAULT_MARGIN", "lots")

	if _, err := Load("does-not-exist.env"); err == nil {
		t.Fatal("expected error for non-numeric margin")
	}
}
