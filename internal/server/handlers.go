package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-sobel/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_sobel").
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
	case "image_sobel":
		return s.handleImageSobel(args)
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

// === Edge Map Handler ===

type imageSobelArgs struct {
	Path       string `json:"path"`
	Workers    *int   `json:"workers"`
	Grayscale  bool   `json:"grayscale"`
	OutputPath string `json:"output_path"`
	Quality    int    `json:"quality"`
}

func (s *Server) handleImageSobel(args json.RawMessage) (interface{}, error) {
	var a imageSobelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	workers := 1
	if a.Workers != nil {
		workers = *a.Workers
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be a positive integer, got %d", workers)
	}
	if a.Quality == 0 {
		a.Quality = imaging.DefaultQuality
	}
	if a.Quality < 1 || a.Quality > 100 {
		return nil, fmt.Errorf("quality must be between 1 and 100, got %d", a.Quality)
	}
	if a.OutputPath != "" {
		if err := imaging.CheckOutputPath(a.OutputPath); err != nil {
			return nil, err
		}
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, magnitude, err := imaging.SobelEdge(img, workers, a.Grayscale)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.Save(a.OutputPath, magnitude, a.Quality); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
	}
	return result, nil
}
