package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-d", "-v"}
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate value", []string{"-d", "data", "-x", "1"}, []string{"-d", "data"}},
		{"equals form", []string{"-v=debug", "-x=1"}, []string{"-v=debug"}},
		{"order preserved", []string{"-v", "warn", "-d=/tmp/x"}, []string{"-v", "warn", "-d=/tmp/x"}},
		{"unknown only", []string{"-x", "1", "positional"}, []string{}},
		{"trailing flag", []string{"-d"}, []string{"-d"}},
		{"value looks like flag", []string{"-d", "-v", "info"}, []string{"-d", "-v", "info"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "cmg.json"}, "cmg.json"},
		{"long equals", []string{"-d", "data", "-config=alt.json"}, "alt.json"},
		{"double dash", []string{"--config", "x.json"}, "x.json"},
		{"absent", []string{"-d", "data"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}

func TestEnvFileFlag(t *testing.T) {
	assert.Equal(t, "prod.env", EnvFileFlag([]string{"-c", "a.json", "-env", "prod.env"}))
	assert.Equal(t, "", EnvFileFlag([]string{"-c", "a.json"}))
}
