package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	// A white block on the right half gives the edge map something to find.
	for y := 0; y < height; y++ {
		for x := width / 2; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool sends a tools/call request through handleRequest.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// toolText extracts the JSON text payload of a successful tool response.
func toolText(t *testing.T, resp *MCPResponse) map[string]interface{} {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", content)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &payload); err != nil {
		t.Fatalf("tool text is not JSON: %v", err)
	}
	return payload
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	payload := toolText(t, callTool(t, s, "image_load", map[string]interface{}{"path": imgPath}))

	if payload["width"] != float64(100) || payload["height"] != float64(80) {
		t.Errorf("dimensions: got %vx%v, want 100x80", payload["width"], payload["height"])
	}
	if payload["channels"] != float64(3) {
		t.Errorf("channels: got %v, want 3", payload["channels"])
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	payload := toolText(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}))

	if payload["width"] != float64(200) || payload["height"] != float64(150) {
		t.Errorf("dimensions: got %vx%v, want 200x150", payload["width"], payload["height"])
	}
}

func TestHandleToolsCall_ImageSobel(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 40, 30, color.Black)

	payload := toolText(t, callTool(t, s, "image_sobel", map[string]interface{}{
		"path":    imgPath,
		"workers": 4,
	}))

	if payload["workers"] != float64(4) {
		t.Errorf("workers: got %v, want 4", payload["workers"])
	}
	if payload["mime_type"] != "image/png" {
		t.Errorf("mime_type: got %v, want image/png", payload["mime_type"])
	}
	if payload["image_base64"] == "" {
		t.Error("image_base64 is empty")
	}
	if _, ok := payload["output_path"]; ok {
		t.Error("output_path should be omitted when nothing was written")
	}
}

func TestHandleToolsCall_ImageSobel_DefaultWorkers(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 20, color.Black)

	payload := toolText(t, callTool(t, s, "image_sobel", map[string]interface{}{"path": imgPath}))

	if payload["workers"] != float64(1) {
		t.Errorf("workers: got %v, want 1", payload["workers"])
	}
}

func TestHandleToolsCall_ImageSobel_Grayscale(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 20, color.RGBA{0, 0, 255, 255})

	payload := toolText(t, callTool(t, s, "image_sobel", map[string]interface{}{
		"path":      imgPath,
		"grayscale": true,
	}))

	if payload["channels"] != float64(1) {
		t.Errorf("channels: got %v, want 1", payload["channels"])
	}
}

func TestHandleToolsCall_ImageSobel_WritesOutput(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 24, 18, color.Black)
	outPath := filepath.Join(t.TempDir(), "edges.png")

	payload := toolText(t, callTool(t, s, "image_sobel", map[string]interface{}{
		"path":        imgPath,
		"output_path": outPath,
	}))

	if payload["output_path"] != outPath {
		t.Errorf("output_path: got %v, want %s", payload["output_path"], outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestHandleToolsCall_ImageSobel_InvalidArguments(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.Black)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"zero workers", map[string]interface{}{"path": imgPath, "workers": 0}, "workers"},
		{"negative workers", map[string]interface{}{"path": imgPath, "workers": -2}, "workers"},
		{"quality too high", map[string]interface{}{"path": imgPath, "quality": 101}, "quality"},
		{"bad output format", map[string]interface{}{"path": imgPath, "output_path": "/tmp/out.txt"}, "unsupported output format"},
		{"missing file", map[string]interface{}{"path": "/nonexistent/image.png"}, "image unreadable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "image_sobel", tt.args)
			if resp.Error == nil {
				t.Fatal("Expected error")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
			if data, _ := resp.Error.Data.(string); !strings.Contains(data, tt.want) {
				t.Errorf("Error data: got %q, want it to mention %q", data, tt.want)
			}
		})
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New()
	resp := callTool(t, s, "image_load", map[string]interface{}{"path": "/nonexistent/image.png"})

	if resp.Error == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := New()
	resp := callTool(t, s, "nonexistent_tool", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp == nil || resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestExecuteTool_AllTools(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 16, 16, color.Black)
	args, _ := json.Marshal(map[string]interface{}{"path": imgPath})

	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if _, err := s.executeTool(tool.Name, args); err != nil {
				t.Errorf("executeTool(%s) failed: %v", tool.Name, err)
			}
		})
	}
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	s := New()
	for _, tool := range GetToolDefinitions() {
		if _, err := s.executeTool(tool.Name, json.RawMessage(`{invalid`)); err == nil {
			t.Errorf("executeTool(%s) should fail on invalid JSON", tool.Name)
		}
	}
}
