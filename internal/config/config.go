// Package config resolves runtime settings from the environment.
//
// The MCP server itself needs no configuration; everything here serves
// the demo agent (chat provider credentials) and the HTTP transport.
package config

import (
	"os"

	"github.com/bankmcp/bankmcp/internal/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Config holds global configuration for bankmcp.
type Config struct {
	// OpenAI-compatible chat provider.
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Azure OpenAI chat provider. Takes precedence when both the key
	// and the endpoint are set.
	AzureAPIKey   string
	AzureEndpoint string

	// Model is the chat model (or Azure deployment name) the demo
	// agent asks for.
	Model string

	// HTTPAddr is the listen address for the streamable HTTP transport.
	HTTPAddr string
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Model:    "gpt-4o-mini",
		HTTPAddr: ":8080",
	}
}

// Load builds the configuration from defaults plus environment
// variable overrides.
func Load() *Config {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if val, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		cfg.OpenAIAPIKey = val
	}

	if val, ok := os.LookupEnv("OPENAI_BASE_URL"); ok {
		cfg.OpenAIBaseURL = val
	}

	if val, ok := os.LookupEnv("AZURE_OPENAI_API_KEY"); ok {
		cfg.AzureAPIKey = val
	}

	if val, ok := os.LookupEnv("AZURE_OPENAI_ENDPOINT"); ok {
		cfg.AzureEndpoint = val
	}

	if val, ok := os.LookupEnv("BANKMCP_MODEL"); ok {
		cfg.Model = val
	}

	if val, ok := os.LookupEnv("BANKMCP_HTTP_ADDR"); ok {
		cfg.HTTPAddr = val
	}
}

// UseAzure reports whether the Azure provider is fully configured.
// Azure needs both the key and the endpoint to be usable.
func (c *Config) UseAzure() bool {
	return c.AzureAPIKey != "" && c.AzureEndpoint != ""
}

// HasCredentials reports whether any chat provider is configured.
func (c *Config) HasCredentials() bool {
	return c.UseAzure() || c.OpenAIAPIKey != ""
}

// ChatClient builds a chat completion client for the configured
// provider. Azure wins when both providers are configured.
func (c *Config) ChatClient() (*openai.Client, error) {
	switch {
	case c.UseAzure():
		return openai.NewClientWithConfig(openai.DefaultAzureConfig(c.AzureAPIKey, c.AzureEndpoint)), nil

	case c.OpenAIAPIKey != "":
		clientCfg := openai.DefaultConfig(c.OpenAIAPIKey)
		if c.OpenAIBaseURL != "" {
			clientCfg.BaseURL = c.OpenAIBaseURL
		}
		return openai.NewClientWithConfig(clientCfg), nil
	}

	return nil, errors.MissingCredentials()
}
