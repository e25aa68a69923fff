package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has an alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema(),
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
					"path": pathSchema(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color and alpha at a pixel. Use on a *_hex.png tile to check whether a point is inside the hexagon (alpha 255) or outside (alpha 0).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Tile Operations
		{
			Name:        "image_add_margin",
			Description: "Add a solid border around an image and return the result as base64-encoded PNG. The source file is not modified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema(),
					"top": map[string]interface{}{
						"type":        "integer",
						"description": "Top margin in pixels (>= 0)",
						"default":     0,
					},
					"right": map[string]interface{}{
						"type":        "integer",
						"description": "Right margin in pixels (>= 0)",
						"default":     0,
					},
					"bottom": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom margin in pixels (>= 0)",
						"default":     0,
					},
					"left": map[string]interface{}{
						"type":        "integer",
						"description": "Left margin in pixels (>= 0)",
						"default":     0,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as #RRGGBB. Default #FFFFFF",
						"default":     "#FFFFFF",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "hex_geometry",
			Description: "Compute the square crop, bleed padding and hexagon vertices that hex_cut would use for an image of the given size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Source image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Source image height in pixels",
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "hex_cut",
			Description: "Cut <directory>/<name>.png|.jpeg|.jpg into a hexagonal tile with a transparent background and write it to <directory>/<name>_hex.png.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Image name without extension",
					},
					"directory": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the directory holding the image",
					},
				},
				"required": []string{"name", "directory"},
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
			"tools": GetToolDefinitions(),
		},
	}
}
