package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RELEASE_TAG_REMOTE",
		"RELEASE_TAG_GIT_BINARY",
		"GIT_BINARY",
		"RELEASE_TAG_LOG_LEVEL",
		"RELEASE_TAG_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfigFile(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Join(wd, FileName+".yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("Should return defaults when no file or env is present", func(t *testing.T) {
		clearEnv(t)
		cfg, err := LoadConfig(afero.NewMemMapFs())
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
	t.Run("Should read values from the config file", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "remote: upstream\nlog_level: debug\nlog_format: structured\n")
		cfg, err := LoadConfig(fs)
		require.NoError(t, err)
		assert.Equal(t, "upstream", cfg.Remote)
		assert.Equal(t, "git", cfg.GitBinary)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "structured", cfg.LogFormat)
	})
	t.Run("Should let environment variables override the file", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "remote: upstream\n")
		t.Setenv("RELEASE_TAG_REMOTE", "mirror")
		t.Setenv("GIT_BINARY", "/usr/local/bin/git")
		cfg, err := LoadConfig(fs)
		require.NoError(t, err)
		assert.Equal(t, "mirror", cfg.Remote)
		assert.Equal(t, "/usr/local/bin/git", cfg.GitBinary)
	})
	t.Run("Should fail validation for an unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RELEASE_TAG_LOG_LEVEL", "verbose")
		cfg, err := LoadConfig(afero.NewMemMapFs())
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid log_level")
	})
	t.Run("Should fail on a malformed config file", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		writeConfigFile(t, fs, "remote: [unterminated\n")
		cfg, err := LoadConfig(fs)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty remote", mutate: func(c *Config) { c.Remote = " " }, wantErr: "remote cannot be empty"},
		{name: "empty git binary", mutate: func(c *Config) { c.GitBinary = "" }, wantErr: "git_binary cannot be empty"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "json" }, wantErr: "invalid log_format"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
