package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/outline-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("outline-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("outline-tools-mcp - MCP server for thinning raster outlines")
			fmt.Println()
			fmt.Println("Usage: outline-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  OUTLINE_MCP_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  OUTLINE_MCP_MAX_ITERATIONS=N      Default thinning sweep cap (1-20, default 8)")
			fmt.Println("  OUTLINE_MCP_HIGHLIGHT=#RRGGBB     Preview color for removed pixels (default #FF00FF)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown option %q; see --help\n", os.Args[1])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("Outline MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: max_iterations=%d highlight=%s", cfg.MaxIterations, cfg.Highlight)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
