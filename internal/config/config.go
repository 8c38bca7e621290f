// Package config handles loading and validating the chefgpt configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the chefgpt daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Sarvam     SarvamConfig     `mapstructure:"sarvam"`
	Generation GenerationConfig `mapstructure:"generation"`
	TTS        TTSConfig        `mapstructure:"tts"`
	Store      StoreConfig      `mapstructure:"store"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the API and health server settings.
type ServerConfig struct {
	Port       int `mapstructure:"port"`
	HealthPort int `mapstructure:"health_port"`
}

// SarvamConfig holds the Sarvam AI vendor API settings. A single credential
// covers all four upstream endpoints and is never exposed to clients.
type SarvamConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ChatModel      string        `mapstructure:"chat_model"`
	STTModel       string        `mapstructure:"stt_model"`
	TTSModel       string        `mapstructure:"tts_model"`
	TranslateModel string        `mapstructure:"translate_model"`
}

// GenerationConfig tunes the recipe generation call.
type GenerationConfig struct {
	// Temperature is kept low so identical pantries produce stable output.
	Temperature float64 `mapstructure:"temperature"`

	// MaxTokens is sized so five multi-step recipes don't get truncated.
	MaxTokens int `mapstructure:"max_tokens"`
}

// TTSConfig holds narration settings.
type TTSConfig struct {
	// MaxChars is the upstream synthesis input ceiling. Longer text is
	// truncated with an ellipsis marker rather than chunked.
	MaxChars int `mapstructure:"max_chars"`

	// Speaker is the default voice.
	Speaker string `mapstructure:"speaker"`

	// SampleRate is the output audio sample rate in Hz.
	SampleRate int `mapstructure:"sample_rate"`
}

// StoreConfig holds pantry persistence settings.
type StoreConfig struct {
	// Path is the SQLite database file for ingredients, favorites, and
	// preferences.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./chefgpt.yaml, ./configs/chefgpt.yaml, /etc/chefgpt/chefgpt.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("sarvam.api_key", "${SARVAM_API_KEY}")
	v.SetDefault("sarvam.base_url", "https://api.sarvam.ai")
	v.SetDefault("sarvam.timeout", "60s")
	v.SetDefault("sarvam.chat_model", "sarvam-m")
	v.SetDefault("sarvam.stt_model", "saaras:v3")
	v.SetDefault("sarvam.tts_model", "bulbul:v3")
	v.SetDefault("sarvam.translate_model", "sarvam-translate:v1")
	v.SetDefault("generation.temperature", 0.3)
	v.SetDefault("generation.max_tokens", 3500)
	v.SetDefault("tts.max_chars", 500)
	v.SetDefault("tts.speaker", "shubh")
	v.SetDefault("tts.sample_rate", 8000)
	v.SetDefault("store.path", "data/chefgpt.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("chefgpt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/chefgpt")
	}

	// Environment variables: CHEFGPT_SERVER_PORT, CHEFGPT_SARVAM_API_KEY, etc.
	v.SetEnvPrefix("CHEFGPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${SARVAM_API_KEY}")
	cfg.Sarvam.APIKey = resolveEnvRef(cfg.Sarvam.APIKey)

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
// An unresolvable reference yields an empty value, which the vendor client
// reports as a missing credential rather than sending it upstream.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
