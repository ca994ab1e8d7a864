// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/renamarr/pkg/release"
)

// Config is the root configuration structure.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Media       MediaConfig       `toml:"media"`
	TMDB        TMDBConfig        `toml:"tmdb"`
	MusicBrainz MusicBrainzConfig `toml:"musicbrainz"`
	History     HistoryConfig     `toml:"history"`
	Naming      NamingConfig      `toml:"naming"`
	Vocabulary  VocabularyConfig  `toml:"vocabulary"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// MediaConfig sets the default scan directory and mode.
type MediaConfig struct {
	Root string `toml:"root"`
	Mode string `toml:"mode"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	Language string `toml:"language"`
}

type MusicBrainzConfig struct {
	UserAgent         string  `toml:"user_agent"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// HistoryConfig enables the rename journal when Path is set.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// NamingConfig overrides the filename templates. Empty fields keep the defaults.
type NamingConfig struct {
	Movie         string `toml:"movie"`
	Episode       string `toml:"episode"`
	TitledEpisode string `toml:"episode_titled"`
	Track         string `toml:"track"`
}

// VocabularyConfig adds noise tokens to the built-in lists, or replaces
// them entirely when Replace is set.
type VocabularyConfig struct {
	Replace bool `toml:"replace"`
	release.Vocabulary
}

// Build returns the effective vocabulary.
func (v VocabularyConfig) Build() release.Vocabulary {
	if v.Replace {
		return v.Vocabulary
	}
	return release.DefaultVocabulary().Extend(v.Vocabulary)
}

// Defaults.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8585
	DefaultLogLevel    = "info"
	DefaultMediaRoot   = "/media"
	DefaultMediaMode   = "auto"
	DefaultLanguage    = "en-US"
	DefaultMBRate      = 1.0
	DefaultMBUserAgent = "renamarr/1.0 (https://github.com/vmunix/renamarr)"
)

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, ignoring
// unresolved environment variables and validation errors.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}

	if c.Media.Root == "" {
		c.Media.Root = os.Getenv("MEDIA_DIR")
	}
	if c.Media.Root == "" {
		c.Media.Root = DefaultMediaRoot
	}
	if c.Media.Mode == "" {
		c.Media.Mode = DefaultMediaMode
	}

	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = os.Getenv("TMDB_API_KEY")
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = DefaultLanguage
	}

	if c.MusicBrainz.UserAgent == "" {
		c.MusicBrainz.UserAgent = DefaultMBUserAgent
	}
	if c.MusicBrainz.RequestsPerSecond == 0 {
		c.MusicBrainz.RequestsPerSecond = DefaultMBRate
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references in content and returns
// the names (or ":?" messages) of the ones that could not be resolved.
// An empty value counts as unset for the :- and :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})

	return result, missing
}
