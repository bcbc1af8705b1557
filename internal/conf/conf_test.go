package conf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "BASE_URL", "UPLOAD_DIR", "HISTORY_DB_PATH",
		"HANDSHAKE_TTL_MINUTES", "HISTORY_MAX_HOURS", "HISTORY_MAX_COUNT",
		"BRAND_HANDLE", "BRAND_NICHE", "PROMPTS_CONFIG_PATH", "DEBUG",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected base URL derived from port, got %q", cfg.Server.BaseURL)
	}
	if cfg.Twitter.HandshakeTTL != 10*time.Minute {
		t.Errorf("Expected default handshake TTL 10m, got %v", cfg.Twitter.HandshakeTTL)
	}
	if cfg.History.MaxAge != 72*time.Hour {
		t.Errorf("Expected default history max age 72h, got %v", cfg.History.MaxAge)
	}
	if cfg.History.MaxCount != 15 {
		t.Errorf("Expected default history max count 15, got %d", cfg.History.MaxCount)
	}
	if cfg.Prompts == nil {
		t.Error("Expected non-nil prompts config")
	}
	if cfg.Debug {
		t.Error("Expected debug off by default")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://bridge.example")
	t.Setenv("HANDSHAKE_TTL_MINUTES", "5")
	t.Setenv("BRAND_HANDLE", "@pixaro")
	t.Setenv("DEBUG", "true")

	cfg := LoadFromEnv()

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.BaseURL != "https://bridge.example" {
		t.Errorf("Expected explicit base URL, got %q", cfg.Server.BaseURL)
	}
	if cfg.Twitter.HandshakeTTL != 5*time.Minute {
		t.Errorf("Expected handshake TTL 5m, got %v", cfg.Twitter.HandshakeTTL)
	}
	if cfg.Brand.Handle != "@pixaro" {
		t.Errorf("Expected brand handle, got %q", cfg.Brand.Handle)
	}
	if !cfg.Debug {
		t.Error("Expected debug on")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing consumer credentials")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError, got %T", err)
	}

	cfg.Twitter.ConsumerKey = "key"
	cfg.Twitter.ConsumerSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoadPromptsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	content := `
composer:
  caption_prompt: "Write a caption for: %s"
chat:
  system_prompt: "You are a brand assistant."
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := LoadPromptsConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Composer.CaptionPrompt != "Write a caption for: %s" {
		t.Errorf("Unexpected caption prompt: %q", cfg.Composer.CaptionPrompt)
	}
	if cfg.Chat.SystemPrompt != "You are a brand assistant." {
		t.Errorf("Unexpected system prompt: %q", cfg.Chat.SystemPrompt)
	}
}

func TestLoadPromptsConfig_MissingFileIsEmpty(t *testing.T) {
	cfg, err := LoadPromptsConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected empty prompts config, got nil")
	}
	if cfg.Composer.CaptionPrompt != "" {
		t.Errorf("Expected empty prompt, got %q", cfg.Composer.CaptionPrompt)
	}
}
