// Package config loads paomind settings from an optional YAML file, a .env
// file and PAOMIND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/paomind/internal/validation"
)

// EnvPrefix namespaces environment overrides, e.g. PAOMIND_LOG_LEVEL.
const EnvPrefix = "PAOMIND"

// Config holds application configuration.
type Config struct {
	DBPath   string   `mapstructure:"db_path"`
	Theme    string   `mapstructure:"theme" validate:"oneof=light dark"`
	Log      Log      `mapstructure:"log"`
	Practice Practice `mapstructure:"practice"`
	LLM      LLM      `mapstructure:"llm"`
}

// Log configures the file logger.
type Log struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// Practice holds the defaults practice setup screens start from.
type Practice struct {
	AutoAdvance    time.Duration `mapstructure:"auto_advance" validate:"min=0"`
	QuizCount      int           `mapstructure:"quiz_count" validate:"min=5,max=50"`
	SequenceLength int           `mapstructure:"sequence_length" validate:"min=3,max=20"`
	StudySeconds   int           `mapstructure:"study_seconds" validate:"min=10,max=120"`
	SpeedLimit     int           `mapstructure:"speed_limit" validate:"min=1,max=30"`
	SpeedSession   int           `mapstructure:"speed_session" validate:"min=5,max=50"`
}

// LLM configures the optional AI generation provider. An empty Provider
// disables it.
type LLM struct {
	Provider    string        `mapstructure:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	MaxTokens   int           `mapstructure:"max_tokens" validate:"min=256"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "")
	v.SetDefault("theme", "dark")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("practice.auto_advance", "2s")
	v.SetDefault("practice.quiz_count", 10)
	v.SetDefault("practice.sequence_length", 3)
	v.SetDefault("practice.study_seconds", 30)
	v.SetDefault("practice.speed_limit", 10)
	v.SetDefault("practice.speed_session", 10)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "120s")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.max_tokens", 16000)
}

// Load reads configuration. When path is empty, config.yaml is looked up in
// the working directory and in $XDG_CONFIG_HOME/paomind; a missing file is
// fine. A .env file in the working directory is loaded first without
// overriding variables already set.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The legacy single-variable override for the database.
	_ = v.BindEnv("db_path", "PAOMIND_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "paomind"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "paomind"), nil
}
