package server

import (
	"log"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/outline-tools-mcp/internal/imaging"
	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel      = "OUTLINE_MCP_LOG_LEVEL"
	EnvMaxIterations = "OUTLINE_MCP_MAX_ITERATIONS"
	EnvHighlight     = "OUTLINE_MCP_HIGHLIGHT"
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// Debug enables per-call debug logging on stderr.
	Debug bool

	// MaxIterations is the sweep cap used when a call omits max_iterations.
	MaxIterations int

	// Highlight is the preview color for removed pixels when a call omits
	// highlight.
	Highlight string
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		MaxIterations: thinning.DefaultIterations,
		Highlight:     imaging.DefaultHighlight,
	}
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() Config {
	return LoadConfig(os.Getenv)
}

// LoadConfig builds a Config from a lookup function such as os.Getenv.
// Invalid values are logged and replaced by defaults.
func LoadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()

	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvMaxIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < thinning.MinIterations || n > thinning.MaxIterations {
			log.Printf("Ignoring %s=%q: want an integer from %d to %d",
				EnvMaxIterations, v, thinning.MinIterations, thinning.MaxIterations)
		} else {
			cfg.MaxIterations = n
		}
	}

	if v := getenv(EnvHighlight); v != "" {
		if _, err := colorful.Hex(v); err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvHighlight, v, err)
		} else {
			cfg.Highlight = v
		}
	}

	return cfg
}
