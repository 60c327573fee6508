package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/outline-tools-mcp/internal/detection"
	"github.com/ironsheep/outline-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "outline_thin").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies defaults from the server Config for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Outline Operations
	case "outline_analyze":
		return s.handleOutlineAnalyze(args)
	case "outline_thin":
		return s.handleOutlineThin(args)
	case "outline_preview":
		return s.handleOutlinePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it logs and returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal result: %v", err)
	}
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path             string `json:"path"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	TransparentIndex *int   `json:"transparent_index"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rule, err := imaging.ResolveRule(img, a.TransparentIndex)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y, rule)
}

// === Outline Handlers ===

// outlineArgs are the arguments shared by every outline tool.
type outlineArgs struct {
	Path             string          `json:"path"`
	Region           *imaging.Region `json:"region"`
	TransparentIndex *int            `json:"transparent_index"`
}

// thinArgs extends outlineArgs with the thinning controls.
type thinArgs struct {
	outlineArgs
	MaxIterations *int `json:"max_iterations"`
}

// thinOptions turns call arguments into ThinOptions, filling in the
// configured iteration cap.
func (s *Server) thinOptions(a thinArgs) imaging.ThinOptions {
	iterations := s.cfg.MaxIterations
	if a.MaxIterations != nil {
		iterations = *a.MaxIterations
	}
	return imaging.ThinOptions{
		MaxIterations:    iterations,
		Region:           a.Region,
		TransparentIndex: a.TransparentIndex,
	}
}

type outlineAnalyzeResult struct {
	Path        string                   `json:"path"`
	Region      imaging.Region           `json:"region"`
	OpacityRule string                   `json:"opacity_rule"`
	Census      *detection.OutlineCensus `json:"census"`
}

func (s *Server) handleOutlineAnalyze(args json.RawMessage) (interface{}, error) {
	var a outlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rule, err := imaging.ResolveRule(img, a.TransparentIndex)
	if err != nil {
		return nil, err
	}
	rect, err := imaging.ResolveRegion(img.Bounds(), a.Region)
	if err != nil {
		return nil, err
	}

	census := detection.Census(imaging.MaskFromImage(img, rect, rule))
	census.Translate(rect.Min)

	return &outlineAnalyzeResult{
		Path:        a.Path,
		Region:      imaging.RegionOf(rect),
		OpacityRule: rule.String(),
		Census:      census,
	}, nil
}

type outlineThinArgs struct {
	thinArgs
	OutputPath   string `json:"output_path"`
	IncludeImage bool   `json:"include_image"`
}

type outlineThinResult struct {
	Path             string         `json:"path"`
	OutputPath       string         `json:"output_path,omitempty"`
	Region           imaging.Region `json:"region"`
	OpacityRule      string         `json:"opacity_rule"`
	MaxIterations    int            `json:"max_iterations"`
	Removed          int            `json:"removed"`
	Sweeps           []int          `json:"sweeps"`
	Converged        bool           `json:"converged"`
	ComponentsBefore int            `json:"components_before"`
	ComponentsAfter  int            `json:"components_after"`
	ImageBase64      string         `json:"image_base64,omitempty"`
	MimeType         string         `json:"mime_type,omitempty"`
}

func (s *Server) handleOutlineThin(args json.RawMessage) (interface{}, error) {
	var a outlineThinArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := s.thinOptions(a.thinArgs)
	result, err := imaging.ThinImage(img, opts)
	if err != nil {
		return nil, err
	}
	s.debugf("outline_thin %s: iterations=%d removed=%d sweeps=%v",
		a.Path, opts.MaxIterations, result.Removed, result.Sweeps)

	out := &outlineThinResult{
		Path:             a.Path,
		Region:           result.Region,
		OpacityRule:      result.Rule,
		MaxIterations:    opts.MaxIterations,
		Removed:          result.Removed,
		Sweeps:           result.Sweeps,
		Converged:        result.Converged,
		ComponentsBefore: len(detection.Components(result.Before)),
		ComponentsAfter:  len(detection.Components(result.After)),
	}

	if a.OutputPath != "" {
		if err := imaging.SavePNG(a.OutputPath, result.Image); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		out.OutputPath = a.OutputPath
	}

	if a.IncludeImage {
		encoded, err := imaging.EncodePNG(result.Image)
		if err != nil {
			return nil, err
		}
		out.ImageBase64 = encoded
		out.MimeType = "image/png"
	}

	return out, nil
}

type outlinePreviewArgs struct {
	thinArgs
	Scale     *int   `json:"scale"`
	Highlight string `json:"highlight"`
	Grid      *bool  `json:"grid"`
}

type outlinePreviewResult struct {
	*imaging.PreviewResult
	Removed   int   `json:"removed"`
	Sweeps    []int `json:"sweeps"`
	Converged bool  `json:"converged"`
}

func (s *Server) handleOutlinePreview(args json.RawMessage) (interface{}, error) {
	var a outlinePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.ThinImage(img, s.thinOptions(a.thinArgs))
	if err != nil {
		return nil, err
	}

	scale := imaging.DefaultPreviewScale
	if a.Scale != nil {
		scale = *a.Scale
	}
	highlight := a.Highlight
	if highlight == "" {
		highlight = s.cfg.Highlight
	}
	grid := true
	if a.Grid != nil {
		grid = *a.Grid
	}

	preview, err := imaging.RenderPreview(img, result.Image, result.RemovedPoints, imaging.PreviewOptions{
		Scale:     scale,
		Highlight: highlight,
		Grid:      grid,
		Region:    a.Region,
	})
	if err != nil {
		return nil, err
	}

	return &outlinePreviewResult{
		PreviewResult: preview,
		Removed:       result.Removed,
		Sweeps:        result.Sweeps,
		Converged:     result.Converged,
	}, nil
}
