package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")
	t.Setenv("TEST_VAR_EMPTY", "")
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	tests := []struct {
		name        string
		input       string
		want        string
		wantMissing []string
	}{
		{"simple", "value = ${TEST_VAR_SIMPLE}", "value = hello", nil},
		{"set but empty", "value = '${TEST_VAR_EMPTY}'", "value = ''", nil},
		{"missing", "value = ${RENAMARR_TEST_NONEXISTENT_VAR_12345}", "value = ${RENAMARR_TEST_NONEXISTENT_VAR_12345}",
			[]string{"RENAMARR_TEST_NONEXISTENT_VAR_12345"}},
		{"default", "value = ${TEST_VAR_EMPTY:-default_value}", "value = default_value", nil},
		{"default overridden", "value = ${SET_VAR_OVERRIDE:-default}", "value = from_env", nil},
		{"required error", "value = ${TEST_VAR_EMPTY:?API key is required}", "value = ${TEST_VAR_EMPTY:?API key is required}",
			[]string{"TEST_VAR_EMPTY: API key is required"}},
		{"required set", "value = ${TEST_VAR_SIMPLE:?needed}", "value = hello", nil},
		{"multiple", "${TEST_VAR_SIMPLE} ${RENAMARR_VAR2_NONEXISTENT} ${TEST_VAR_EMPTY:-three}",
			"hello ${RENAMARR_VAR2_NONEXISTENT} three", []string{"RENAMARR_VAR2_NONEXISTENT"}},
		{"no references", "port = 80", "port = 80", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
