package config

import (
	"os"
	"testing"

	"github.com/bankmcp/bankmcp/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.Model)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default HTTP addr :8080, got %s", cfg.HTTPAddr)
	}

	if cfg.OpenAIAPIKey != "" || cfg.AzureAPIKey != "" {
		t.Error("expected no default credentials")
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "sk-test")
	defer os.Unsetenv("OPENAI_API_KEY")

	os.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	defer os.Unsetenv("OPENAI_BASE_URL")

	os.Setenv("AZURE_OPENAI_API_KEY", "azure-key")
	defer os.Unsetenv("AZURE_OPENAI_API_KEY")

	os.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	defer os.Unsetenv("AZURE_OPENAI_ENDPOINT")

	os.Setenv("BANKMCP_MODEL", "gpt-4o")
	defer os.Unsetenv("BANKMCP_MODEL")

	os.Setenv("BANKMCP_HTTP_ADDR", ":9090")
	defer os.Unsetenv("BANKMCP_HTTP_ADDR")

	cfg := Load()

	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("expected OpenAI key override, got %s", cfg.OpenAIAPIKey)
	}

	if cfg.OpenAIBaseURL != "http://localhost:11434/v1" {
		t.Errorf("expected base URL override, got %s", cfg.OpenAIBaseURL)
	}

	if cfg.AzureAPIKey != "azure-key" {
		t.Errorf("expected Azure key override, got %s", cfg.AzureAPIKey)
	}

	if cfg.AzureEndpoint != "https://example.openai.azure.com" {
		t.Errorf("expected Azure endpoint override, got %s", cfg.AzureEndpoint)
	}

	if cfg.Model != "gpt-4o" {
		t.Errorf("expected model override, got %s", cfg.Model)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected HTTP addr override, got %s", cfg.HTTPAddr)
	}
}

func TestUseAzure_RequiresKeyAndEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		endpoint string
		want     bool
	}{
		{"both set", "azure-key", "https://example.openai.azure.com", true},
		{"key only", "azure-key", "", false},
		{"endpoint only", "", "https://example.openai.azure.com", false},
		{"neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AzureAPIKey: tt.key, AzureEndpoint: tt.endpoint}
			if got := cfg.UseAzure(); got != tt.want {
				t.Errorf("UseAzure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"openai key", Config{OpenAIAPIKey: "sk-test"}, true},
		{"azure pair", Config{AzureAPIKey: "k", AzureEndpoint: "e"}, true},
		{"azure key without endpoint", Config{AzureAPIKey: "k"}, false},
		{"nothing", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasCredentials(); got != tt.want {
				t.Errorf("HasCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChatClient_OpenAI(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}

	client, err := cfg.ChatClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestChatClient_Azure(t *testing.T) {
	cfg := &Config{
		AzureAPIKey:   "azure-key",
		AzureEndpoint: "https://example.openai.azure.com",
		// The OpenAI key must lose to the Azure pair
		OpenAIAPIKey: "sk-test",
	}

	if !cfg.UseAzure() {
		t.Fatal("expected Azure provider to win")
	}

	client, err := cfg.ChatClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestChatClient_MissingCredentials(t *testing.T) {
	cfg := &Config{}

	_, err := cfg.ChatClient()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, errors.CodeMissingCredentials) {
		t.Errorf("expected code %s, got %v", errors.CodeMissingCredentials, err)
	}
}
