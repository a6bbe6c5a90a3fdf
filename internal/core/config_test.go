package core

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigRejeitaSecretKeyPadrao(t *testing.T) {
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("SECRET_KEY", "default_secret_key_please_change_this_in_production_12345")

	_, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("LoadConfig com chave padrão = %v, quer ErrConfiguration", err)
	}
}

func TestLoadConfigRejeitaURLInvalida(t *testing.T) {
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("SECRET_KEY", "chave-de-teste-sem-importancia")
	t.Setenv("APP_API_BASE_URL", "::isto-nao-e-uma-url::")

	_, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("LoadConfig com URL inválida = %v, quer ErrConfiguration", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("APP_EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("APP_SESSION_FILE", filepath.Join(dir, "session.bin"))

	cfg, err := LoadConfig(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL padrão = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout padrão = %v", cfg.HTTPTimeout)
	}
}
