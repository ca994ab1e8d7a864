// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/renamarr/internal/media"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if _, err := media.ParseMode(c.Media.Mode); err != nil {
		errs = append(errs, "media.mode: "+err.Error())
	}

	if c.MusicBrainz.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("musicbrainz.requests_per_second: must not be negative, got %g", c.MusicBrainz.RequestsPerSecond))
	}

	templates := []struct{ field, tmpl string }{
		{"naming.movie", c.Naming.Movie},
		{"naming.episode", c.Naming.Episode},
		{"naming.episode_titled", c.Naming.TitledEpisode},
		{"naming.track", c.Naming.Track},
	}
	for _, t := range templates {
		if t.tmpl != "" && !strings.Contains(t.tmpl, "{ext}") {
			errs = append(errs, fmt.Sprintf("%s: template must contain {ext}", t.field))
		}
		if strings.ContainsAny(t.tmpl, `/\`) {
			errs = append(errs, fmt.Sprintf("%s: template must not contain path separators", t.field))
		}
	}

	return errs
}

// Warnings returns non-fatal problems, such as a media root that does not
// exist yet.
func (c *Config) Warnings() []string {
	var warns []string
	if c.Media.Root != "" {
		if info, err := os.Stat(c.Media.Root); err != nil || !info.IsDir() {
			warns = append(warns, fmt.Sprintf("media.root: directory %q does not exist", c.Media.Root))
		}
	}
	if c.TMDB.APIKey == "" {
		warns = append(warns, "tmdb.api_key: not set, movie and TV lookups are disabled")
	}
	return warns
}
