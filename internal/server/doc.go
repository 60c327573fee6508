// Package server implements the MCP (Model Context Protocol) server for the
// outline thinning tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line, and
// exposes the thinning engine to MCP clients so they can inspect sprites and
// line art, thin their outlines to single-pixel width, and preview the
// result before writing it back.
//
// # Protocol
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Metadata, palette transparency and opaque pixel count
//   - image_dimensions: Width and height
//   - image_sample_color: Color and outline role of one pixel
//
// Outline Operations:
//   - outline_analyze: Pixel role counts and 8-connected components
//   - outline_thin: Thin outlines, optionally writing the result as PNG
//   - outline_preview: Before/after preview with removed pixels highlighted
//
// # Configuration
//
// Defaults come from a Config, normally built by ConfigFromEnv:
//   - OUTLINE_MCP_LOG_LEVEL=debug enables debug logging
//   - OUTLINE_MCP_MAX_ITERATIONS sets the default sweep cap (1-20, default 8)
//   - OUTLINE_MCP_HIGHLIGHT sets the preview highlight color (default #FF00FF)
//
// Tool arguments override these per call. Logs go to stderr; stdout carries
// the protocol.
//
// # Image Caching
//
// Images are cached by path for the lifetime of the process. outline_thin
// evicts its output_path after writing so later calls see the new pixels,
// which makes overwriting the source file safe.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
