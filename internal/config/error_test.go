// internal/config/error_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error(t *testing.T) {
	empty := &ConfigError{Path: "/etc/renamarr/config.toml"}
	assert.Empty(t, empty.Error())
	assert.False(t, empty.HasErrors())

	e := &ConfigError{
		Path:    "/etc/renamarr/config.toml",
		Missing: []string{"API_KEY", "SECRET"},
		Errors:  []string{"server.port: must be 1-65535"},
	}
	got := e.Error()
	assert.True(t, e.HasErrors())
	assert.Contains(t, got, "invalid config /etc/renamarr/config.toml")
	assert.Contains(t, got, "missing environment variables: API_KEY, SECRET")
	assert.Contains(t, got, "validation failed:")
	assert.Contains(t, got, "  - server.port")
}
