package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "http://localhost:5173" {
		t.Errorf("CORSOrigin = %q, want default origin", cfg.Server.CORSOrigin)
	}
	if cfg.Twilio.AccountSID != "" {
		t.Errorf("AccountSID = %q, want empty", cfg.Twilio.AccountSID)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
  cors_origin: https://app.example.com
twilio:
  account_sid: ACfile
  auth_token: tokenfile
  verify_sid: VAfile
  dry_run: true
`)

	cfg := loadConfig(path)

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "https://app.example.com" {
		t.Errorf("CORSOrigin = %q, want file value", cfg.Server.CORSOrigin)
	}
	if cfg.Twilio.AccountSID != "ACfile" || cfg.Twilio.AuthToken != "tokenfile" || cfg.Twilio.VerifySID != "VAfile" {
		t.Errorf("Twilio = %+v, want file values", cfg.Twilio)
	}
	if !cfg.Twilio.DryRun {
		t.Error("DryRun should be true from file")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
twilio:
  account_sid: ACfile
`)

	t.Setenv("TWILIO_ACCOUNT_SID", "ACenv")
	t.Setenv("TWILIO_AUTH_TOKEN", "tokenenv")
	t.Setenv("TWILIO_VERIFY_SID", "VAenv")
	t.Setenv("CORS_ORIGIN", "http://localhost:4000")
	t.Setenv("PORT", "9999")
	t.Setenv("TWILIO_DRY_RUN", "true")

	cfg := loadConfig(path)

	if cfg.Twilio.AccountSID != "ACenv" {
		t.Errorf("AccountSID = %q, want env value", cfg.Twilio.AccountSID)
	}
	if cfg.Twilio.AuthToken != "tokenenv" || cfg.Twilio.VerifySID != "VAenv" {
		t.Errorf("Twilio = %+v, want env values", cfg.Twilio)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want env value 9999", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "http://localhost:4000" {
		t.Errorf("CORSOrigin = %q, want env value", cfg.Server.CORSOrigin)
	}
	if !cfg.Twilio.DryRun {
		t.Error("DryRun should be true from env")
	}
}

func TestLoadConfig_BadEnvValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want default 3000 when PORT is malformed", cfg.Server.Port)
	}
}
