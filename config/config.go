//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package config loads the runtime configuration for TacticsMaster.
//
// Configuration is resolved from an optional config.yaml, a local .env file
// and TACTICS_-prefixed environment variables, in increasing priority. The
// returned Config is treated as immutable: components receive it once at
// construction time and never mutate it.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds every runtime knob of the service.
type Config struct {
	AppName  string        `mapstructure:"app_name"`
	Version  string        `mapstructure:"version"`
	LogLevel string        `mapstructure:"log_level"`
	Server   ServerConfig  `mapstructure:"server"`
	Model    ModelConfig   `mapstructure:"model"`
	Cricket  CricketConfig `mapstructure:"cricket"`
	Trace    TraceConfig   `mapstructure:"trace"`
}

// ServerConfig configures the HTTP listener and request limits.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	CORSOrigins        []string      `mapstructure:"cors_origins"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute"`
	MaxQueryLength     int           `mapstructure:"max_query_length"`
	MaxBatchSize       int           `mapstructure:"max_batch_size"`
	AnalysisTimeout    time.Duration `mapstructure:"analysis_timeout"`
}

// ModelConfig selects the LLM provider and its generation parameters.
// Missing API keys are not an error: the agent degrades to its keyword
// fallback when no provider can be constructed.
type ModelConfig struct {
	Provider     string  `mapstructure:"provider"`
	GeminiAPIKey string  `mapstructure:"gemini_api_key"`
	OpenAIAPIKey string  `mapstructure:"openai_api_key"`
	GeminiModel  string  `mapstructure:"gemini_model"`
	OpenAIModel  string  `mapstructure:"openai_model"`
	Temperature  float64 `mapstructure:"temperature"`
	MaxTokens    int     `mapstructure:"max_tokens"`
}

// CricketConfig configures the upstream cricket data provider. A missing
// API key simply routes every lookup to the built-in mock catalog.
type CricketConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TraceConfig configures the optional OTLP trace exporter.
type TraceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Protocol string `mapstructure:"protocol"`
}

// Load resolves the configuration from config files and the environment.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("TACTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindUpstreamKeys(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile loads the first .env found near the working directory or the
// module root, so the service picks up local credentials when run from
// subdirectories or tests.
func loadEnvFile() {
	paths := []string{".env", "../.env", "../../.env"}
	if root := findModuleRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if godotenv.Load(path) == nil {
				return
			}
		}
	}
}

// findModuleRoot walks up from the working directory to the first directory
// containing a go.mod.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// setDefaults registers every known key with viper. Registration is what
// lets AutomaticEnv overrides flow into Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "Tactics Master API")
	v.SetDefault("version", "1.0.0")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit_per_minute", 60)
	v.SetDefault("server.max_query_length", 1000)
	v.SetDefault("server.max_batch_size", 10)
	v.SetDefault("server.analysis_timeout", 300*time.Second)

	v.SetDefault("model.provider", ProviderGemini)
	v.SetDefault("model.gemini_api_key", "")
	v.SetDefault("model.openai_api_key", "")
	v.SetDefault("model.gemini_model", "gemini-1.5-flash")
	v.SetDefault("model.openai_model", "gpt-4o-mini")
	v.SetDefault("model.temperature", 0.1)
	v.SetDefault("model.max_tokens", 4000)

	v.SetDefault("cricket.api_key", "")
	v.SetDefault("cricket.base_url", "https://api.cricapi.com/v1")
	v.SetDefault("cricket.timeout", 10*time.Second)

	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "localhost:4317")
	v.SetDefault("trace.protocol", "grpc")
}

// bindUpstreamKeys binds the credential keys to the unprefixed names the
// upstream providers document, so GEMINI_API_KEY and friends keep working
// alongside the TACTICS_ spellings.
func bindUpstreamKeys(v *viper.Viper) {
	_ = v.BindEnv("model.gemini_api_key", "TACTICS_MODEL_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("model.openai_api_key", "TACTICS_MODEL_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("cricket.api_key", "TACTICS_CRICKET_API_KEY", "CRICKET_API_KEY", "CRICAPI_KEY")
	_ = v.BindEnv("cricket.base_url", "TACTICS_CRICKET_BASE_URL", "CRICKET_API_BASE_URL")
}

// validate rejects configurations the service cannot run with. Missing
// provider credentials are deliberately not validated here.
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be positive")
	}
	if cfg.Server.MaxQueryLength <= 0 {
		return fmt.Errorf("server.max_query_length must be positive")
	}
	if cfg.Server.MaxBatchSize <= 0 {
		return fmt.Errorf("server.max_batch_size must be positive")
	}
	switch cfg.Model.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("model.provider %q is not supported", cfg.Model.Provider)
	}
	if cfg.Model.Temperature < 0 || cfg.Model.Temperature > 2 {
		return fmt.Errorf("model.temperature %v out of range", cfg.Model.Temperature)
	}
	if cfg.Model.MaxTokens <= 0 {
		return fmt.Errorf("model.max_tokens must be positive")
	}
	if cfg.Cricket.BaseURL == "" {
		return fmt.Errorf("cricket.base_url is required")
	}
	if cfg.Cricket.Timeout <= 0 {
		return fmt.Errorf("cricket.timeout must be positive")
	}
	switch cfg.Trace.Protocol {
	case "grpc", "http":
	default:
		return fmt.Errorf("trace.protocol %q is not supported", cfg.Trace.Protocol)
	}
	return nil
}

// Address returns the host:port the HTTP server binds to.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
