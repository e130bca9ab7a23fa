package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level hiresignal configuration.
type Config struct {
	GitHub  GitHub  `mapstructure:"github"`
	Sample  Sample  `mapstructure:"sample"`
	Output  Output  `mapstructure:"output"`
	Log     Log     `mapstructure:"log"`
	Metrics Metrics `mapstructure:"metrics"`
	DBPath  string  `mapstructure:"db_path"`
}

// GitHub configures API access.
type GitHub struct {
	Token        string `mapstructure:"token"`
	BaseURL      string `mapstructure:"base_url"`
	MaxRepoPages int    `mapstructure:"max_repo_pages"`
}

// Sample bounds the content fetched for the top repositories.
type Sample struct {
	Readmes        int `mapstructure:"readmes"`
	Trees          int `mapstructure:"trees"`
	CommitsPerRepo int `mapstructure:"commits_per_repo"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Log defines logger preferences.
type Log struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Metrics configures the Prometheus textfile export. An empty path
// disables it.
type Metrics struct {
	Textfile string `mapstructure:"textfile"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies HIRESIGNAL_* environment overrides and returns a Config with all
// defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("github.token", "")
	v.SetDefault("github.base_url", DefaultGitHub.BaseURL)
	v.SetDefault("github.max_repo_pages", DefaultGitHub.MaxRepoPages)
	v.SetDefault("sample.readmes", DefaultSample.Readmes)
	v.SetDefault("sample.trees", DefaultSample.Trees)
	v.SetDefault("sample.commits_per_repo", DefaultSample.CommitsPerRepo)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("log.json", DefaultLog.JSON)
	v.SetDefault("log.debug", DefaultLog.Debug)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("db_path", DBPath())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Metrics.Textfile = expandPath(cfg.Metrics.Textfile)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(ConfigDir(), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
