package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_sobel",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema.type: got %v, want object", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema.properties should be a map")
			}
			if _, ok := props["path"]; !ok {
				t.Error("every tool takes a path")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) != 1 || required[0] != "path" {
				t.Errorf("required: got %v, want [path]", tool.InputSchema["required"])
			}
		})
	}
}

func TestToolDefinitions_SobelDefaults(t *testing.T) {
	var sobelTool Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "image_sobel" {
			sobelTool = tool
		}
	}

	props := sobelTool.InputSchema["properties"].(map[string]interface{})
	tests := []struct {
		prop string
		want interface{}
	}{
		{"workers", 1},
		{"grayscale", false},
		{"quality", 90},
	}

	for _, tt := range tests {
		p, ok := props[tt.prop].(map[string]interface{})
		if !ok {
			t.Errorf("property %s missing", tt.prop)
			continue
		}
		if p["default"] != tt.want {
			t.Errorf("%s default: got %v, want %v", tt.prop, p["default"], tt.want)
		}
	}
}
