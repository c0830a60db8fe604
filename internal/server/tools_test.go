package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{"ocr_recognize", "ocr_recognize_batch", "image_info", "ocr_engine_info"}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %s has no input schema", tool.Name)
		}
		byName[tool.Name] = tool
	}

	for _, name := range want {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing tool: %s", name)
		}
	}
}

func TestToolSchemas_HaveObjectType(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %s: schema type %v, want object", tool.Name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("tool %s: schema has no properties", tool.Name)
		}
	}
}

func TestBatchTool_RequiresPaths(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "ocr_recognize_batch" {
			continue
		}
		required, ok := tool.InputSchema["required"].([]string)
		if !ok {
			t.Fatal("batch tool has no required list")
		}
		for _, r := range required {
			if r == "paths" {
				return
			}
		}
		t.Error("batch tool does not require paths")
	}
}
