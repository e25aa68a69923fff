package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/hextile/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "hex_cut").
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
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_add_margin":
		return s.handleImageAddMargin(args)
	case "hex_geometry":
		return s.handleHexGeometry(args)
	case "hex_cut":
		return s.handleHexCut(args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
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
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
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
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Tile Operation Handlers ===

type imageAddMarginArgs struct {
	Path   string `json:"path"`
	Top    int    `json:"top"`
	Right  int    `json:"right"`
	Bottom int    `json:"bottom"`
	Left   int    `json:"left"`
	Color  string `json:"color"`
}

func (s *Server) handleImageAddMargin(args json.RawMessage) (interface{}, error) {
	var a imageAddMarginArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fill, err := imaging.ParseFillColor(a.Color)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	padded, err := imaging.AddMargin(img, imaging.Margin{
		Top:    a.Top,
		Right:  a.Right,
		Bottom: a.Bottom,
		Left:   a.Left,
		Fill:   fill,
	})
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNGBase64(padded)
}

type hexGeometryArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleHexGeometry(args json.RawMessage) (interface{}, error) {
	var a hexGeometryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GeometryForSource(a.Width, a.Height)
}

type hexCutArgs struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
}

func (s *Server) handleHexCut(args json.RawMessage) (interface{}, error) {
	var a hexCutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" || a.Directory == "" {
		return nil, errors.New("name and directory are required")
	}

	res, err := s.cutter.Cut(a.Name, a.Directory)
	if err != nil {
		return nil, err
	}
	// the tile may have been loaded by an earlier call
	s.cache.Evict(res.Output)
	return res, nil
}

