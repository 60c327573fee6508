package server

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			"defaults",
			nil,
			Config{MaxIterations: 8, Highlight: "#FF00FF"},
		},
		{
			"all set",
			map[string]string{
				EnvLogLevel:      "debug",
				EnvMaxIterations: "12",
				EnvHighlight:     "#00ff00",
			},
			Config{Debug: true, MaxIterations: 12, Highlight: "#00ff00"},
		},
		{
			"other log level",
			map[string]string{EnvLogLevel: "info"},
			Config{MaxIterations: 8, Highlight: "#FF00FF"},
		},
		{
			"iterations not a number",
			map[string]string{EnvMaxIterations: "lots"},
			Config{MaxIterations: 8, Highlight: "#FF00FF"},
		},
		{
			"iterations out of range",
			map[string]string{EnvMaxIterations: "21"},
			Config{MaxIterations: 8, Highlight: "#FF00FF"},
		},
		{
			"iterations at the bounds",
			map[string]string{EnvMaxIterations: "20"},
			Config{MaxIterations: 20, Highlight: "#FF00FF"},
		},
		{
			"bad highlight",
			map[string]string{EnvHighlight: "magenta"},
			Config{MaxIterations: 8, Highlight: "#FF00FF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadConfig(func(key string) string { return tt.env[key] })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvMaxIterations, "3")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvHighlight, "")

	cfg := ConfigFromEnv()
	if cfg.MaxIterations != 3 {
		t.Errorf("MaxIterations: got %d, want 3", cfg.MaxIterations)
	}
	if cfg.Debug {
		t.Error("Debug should be off")
	}
}
