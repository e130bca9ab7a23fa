// Package config provides configuration loading and defaults for hiresignal.
package config

// DefaultConfigDir is the default location for hiresignal configuration.
const DefaultConfigDir = "~/.config/hiresignal"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "hiresignal.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. HIRESIGNAL_GITHUB_TOKEN.
const EnvPrefix = "HIRESIGNAL"

// DefaultGitHub holds the default API settings. An empty base URL means the
// public api.github.com endpoint.
var DefaultGitHub = GitHub{
	MaxRepoPages: 1,
}

// DefaultSample holds how much content is sampled from top repositories.
var DefaultSample = Sample{
	Readmes:        5,
	Trees:          3,
	CommitsPerRepo: 30,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultLog holds the default logging preferences.
var DefaultLog = Log{
	JSON:  false,
	Debug: false,
}
