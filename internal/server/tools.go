package server

import (
	"github.com/ironsheep/outline-tools-mcp/internal/imaging"
	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema of the image path argument.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// regionProperty is the schema of the optional region argument.
var regionProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional region to work on; pixels outside it are left untouched. Defaults to the whole image.",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
		"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
		"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
		"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

// transparentIndexProperty is the schema of the palette override argument.
var transparentIndexProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Palette index that counts as transparent (paletted images only). Defaults to the first fully transparent palette entry; -1 declares no entry transparent. A palette without a transparent entry is treated as fully opaque.",
	"minimum":     -1,
	"maximum":     255,
}

// maxIterationsProperty is the schema of the sweep cap argument.
func maxIterationsProperty(defaultIterations int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of thinning sweeps. Thinning stops earlier once a sweep removes nothing.",
		"minimum":     thinning.MinIterations,
		"maximum":     thinning.MaxIterations,
		"default":     defaultIterations,
	}
}

// GetToolDefinitions returns all available tools. Defaults shown in the
// schemas come from cfg.
func GetToolDefinitions(cfg Config) []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color model, palette transparency and opaque pixel count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of a pixel (hex, RGBA, HSL, palette index) and its outline role: transparent, interior, outline, or redundant (removable by thinning).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based from top)",
					},
					"transparent_index": transparentIndexProperty,
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Outline Operations
		{
			Name:        "outline_analyze",
			Description: "Count opaque, outline, interior and redundant pixels and list the 8-connected shapes in an image or region. Redundant pixels are the ones outline_thin would start removing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":              pathProperty,
					"region":            regionProperty,
					"transparent_index": transparentIndexProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "outline_thin",
			Description: "Thin the outlines of an image to single-pixel width. components_before and components_after show whether thinning split a shape. Pixels are only ever made transparent; surviving pixels keep their color. Optionally writes the result as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":              pathProperty,
					"max_iterations":    maxIterationsProperty(cfg.MaxIterations),
					"region":            regionProperty,
					"transparent_index": transparentIndexProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the thinned image to as PNG. May equal path to overwrite the source.",
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the thinned image as base64-encoded PNG",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "outline_preview",
			Description: "Thin an image in memory and return a side-by-side before/after PNG with removed pixels highlighted, upscaled for inspection. Nothing is written to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":              pathProperty,
					"max_iterations":    maxIterationsProperty(cfg.MaxIterations),
					"region":            regionProperty,
					"transparent_index": transparentIndexProperty,
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor",
						"minimum":     1,
						"maximum":     imaging.MaxPreviewScale,
						"default":     imaging.DefaultPreviewScale,
					},
					"highlight": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for removed pixels",
						"default":     cfg.Highlight,
					},
					"grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw pixel grid lines (scale 4 and above)",
						"default":     true,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(s.cfg),
		},
	}
}
