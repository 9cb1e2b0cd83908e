package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/compozy/releasetag/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// FileName is the configuration file looked up in the working directory, without extension
	FileName = ".release-tag"
	// EnvPrefix prefixes every environment variable read by the configuration
	EnvPrefix = "RELEASE_TAG"
)

type Config struct {
	Remote    string `mapstructure:"remote"     yaml:"remote"`
	GitBinary string `mapstructure:"git_binary" yaml:"git_binary"`
	LogLevel  string `mapstructure:"log_level"  yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Remote:    "origin",
		GitBinary: "git",
		LogLevel:  string(logging.LogLevelWarn),
		LogFormat: string(logging.LogFormatConsole),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Remote) == "" {
		return errors.New("remote cannot be empty")
	}
	if strings.TrimSpace(c.GitBinary) == "" {
		return errors.New("git_binary cannot be empty")
	}
	if !logging.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level: %s (expected debug, info, warn or error)", c.LogLevel)
	}
	if !logging.IsValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid log_format: %s (expected console or structured)", c.LogFormat)
	}
	return nil
}

// LoadConfig reads .release-tag.yaml from the working directory of fs, then the environment.
// A missing file is not an error.
func LoadConfig(fs afero.Fs) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - it will check them in order
	if err := v.BindEnv("remote", EnvPrefix+"_REMOTE"); err != nil {
		return nil, fmt.Errorf("failed to bind remote env: %w", err)
	}
	if err := v.BindEnv("git_binary", EnvPrefix+"_GIT_BINARY", "GIT_BINARY"); err != nil {
		return nil, fmt.Errorf("failed to bind git_binary env: %w", err)
	}
	if err := v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log_level env: %w", err)
	}
	if err := v.BindEnv("log_format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind log_format env: %w", err)
	}
	defaults := DefaultConfig()
	v.SetDefault("remote", defaults.Remote)
	v.SetDefault("git_binary", defaults.GitBinary)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.Remote = strings.TrimSpace(config.Remote)
	config.GitBinary = strings.TrimSpace(config.GitBinary)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
