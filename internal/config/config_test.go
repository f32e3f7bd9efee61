package config

import (
	"testing"

	"github.com/akozyreva/medcab/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OCRURL != constants.DefaultOCRURL {
		t.Errorf("OCRURL = %q, want default", cfg.OCRURL)
	}
	if cfg.OverpassURL != constants.DefaultOverpassURL {
		t.Errorf("OverpassURL = %q, want default", cfg.OverpassURL)
	}
	if cfg.PharmacyRadius != constants.DefaultPharmacyRadius {
		t.Errorf("PharmacyRadius = %d, want default", cfg.PharmacyRadius)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(constants.EnvOCRURL, "http://localhost:9000/check")
	t.Setenv(constants.EnvOCRToken, "env-token")
	t.Setenv(constants.EnvPharmacyRadius, "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OCRURL != "http://localhost:9000/check" {
		t.Errorf("OCRURL = %q", cfg.OCRURL)
	}
	if cfg.OCRToken != "env-token" {
		t.Errorf("OCRToken = %q", cfg.OCRToken)
	}
	if cfg.PharmacyRadius != 250 {
		t.Errorf("PharmacyRadius = %d, want 250", cfg.PharmacyRadius)
	}
}

func TestLoadIgnoresBadRadius(t *testing.T) {
	t.Setenv(constants.EnvPharmacyRadius, "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.PharmacyRadius != constants.DefaultPharmacyRadius {
		t.Errorf("bad radius should fall back to default, got %d", cfg.PharmacyRadius)
	}
}
