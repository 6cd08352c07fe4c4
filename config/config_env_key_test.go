package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  serviceName: docs
  log:
    level: info
secretKey:
  access: from-yaml
auth:
  tokenTtl: 2h
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("secretKey.access = %q, want %q", cfg.SecretKey.Access, "from-env")
	}
	if cfg.Env.ServiceName != "docs" {
		t.Fatalf("env.serviceName = %q, want %q", cfg.Env.ServiceName, "docs")
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("auth.tokenTtl = %+v, want 2h", cfg.Auth)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("missing"); err == nil {
		t.Fatal("LoadWithEnv() expected error for missing config file")
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "docs"

	cfg.applyAuthDefaults()

	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("TokenTTL = %s, want %s", cfg.Auth.TokenTTL, defaultTokenTTL)
	}
	if cfg.Auth.Issuer != "docs" {
		t.Fatalf("Issuer = %q, want %q", cfg.Auth.Issuer, "docs")
	}
	if cfg.Auth.DefaultRole != "user" {
		t.Fatalf("DefaultRole = %q, want %q", cfg.Auth.DefaultRole, "user")
	}
}
