package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	setup(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected server config: %+v", cfg.HTTPServer)
	}
	if cfg.Assistant.EnrichmentTimeout != 3*time.Second {
		t.Errorf("EnrichmentTimeout = %v, want 3s", cfg.Assistant.EnrichmentTimeout)
	}
	if cfg.Assistant.SessionTTL != 30*time.Minute || cfg.Assistant.MaxSessions != 1000 {
		t.Errorf("unexpected session config: %+v", cfg.Assistant)
	}
	if cfg.Enrichment.CacheTTL != time.Hour || cfg.Enrichment.RateLimitPerMin != 30 {
		t.Errorf("unexpected enrichment config: %+v", cfg.Enrichment)
	}
	if cfg.LLM.HasProviders() {
		t.Error("expected no providers by default")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := setup(t)
	writeFile(t, dir, "config.yaml", `
http_server:
  port: 9090
assistant:
  lexicon_path: ./lexicon.yaml
  enrichment_timeout: 1500ms
telegram:
  bot_token: file-token
  webhook_secret: s3cret
llm:
  providers:
    - name: deepseek
      enabled: true
      priority: 1
      api_key: ${DEEPSEEK_API_KEY}
      model: deepseek-chat
      timeout: 5s
    - name: gemini
      enabled: false
      priority: 2
      api_key: literal-key
`)
	writeFile(t, dir, ".env", "DEEPSEEK_API_KEY=from-dotenv\n")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "5")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Cleanup(func() { os.Unsetenv("DEEPSEEK_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.Assistant.LexiconPath != "./lexicon.yaml" || cfg.Assistant.EnrichmentTimeout != 1500*time.Millisecond {
		t.Errorf("unexpected assistant config: %+v", cfg.Assistant)
	}
	if cfg.RateLimit.RequestsPerMin != 5 {
		t.Errorf("RequestsPerMin = %d, want 5 from env", cfg.RateLimit.RequestsPerMin)
	}
	if cfg.Telegram.BotToken != "env-token" || cfg.Telegram.WebhookSecret != "s3cret" {
		t.Errorf("unexpected telegram config: %+v", cfg.Telegram)
	}

	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	ds := cfg.LLM.Providers[0]
	if ds.APIKey != "from-dotenv" || ds.Priority != 1 || ds.Timeout != "5s" {
		t.Errorf("unexpected deepseek provider: %+v", ds)
	}
	if cfg.LLM.Providers[1].APIKey != "literal-key" {
		t.Errorf("literal api key should pass through, got %q", cfg.LLM.Providers[1].APIKey)
	}
	if !cfg.LLM.HasProviders() {
		t.Error("expected an enabled provider")
	}
}

func TestLoad_InvalidProviders(t *testing.T) {
	dir := setup(t)
	writeFile(t, dir, "config.yaml", `
llm:
  providers:
    - name: deepseek
      enabled: true
      priority: 1
    - name: qwen
      enabled: true
      priority: 1
`)

	if _, err := Load(); err == nil {
		t.Fatal("expected duplicate priority error")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 1},
				{Name: "gemini", Enabled: true, Priority: 2},
			}},
		},
		{
			name:    "missing name",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "non-positive priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true}}},
			wantErr: true,
		},
		{
			name:    "all disabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Priority: 1}}},
			wantErr: true,
		},
		{
			name: "disabled providers may share priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1},
				{Name: "gemini", Priority: 1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
