package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// optionProperties is the schema fragment shared by both recognition tools.
func optionProperties() map[string]interface{} {
	return map[string]interface{}{
		"languages": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Ordered language tags (e.g. \"en-US\", \"zh-Hans\"). Default: [\"en-US\"]",
		},
		"recognition_level": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"fast", "accurate"},
			"description": "Recognition mode. Default: accurate",
		},
		"min_confidence": map[string]interface{}{
			"type":        "number",
			"description": "Candidate-acceptance floor, 0.0-1.0. Default: 0.0",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	recognizeProps := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file (jpg, jpeg, png, tiff, gif, bmp)",
		},
		"data": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded image bytes. Alternative to path; exactly one must be set",
		},
	}
	for k, v := range optionProperties() {
		recognizeProps[k] = v
	}

	batchProps := map[string]interface{}{
		"paths": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Image file paths, one batch item each. Result slots are index-aligned with this array",
		},
		"max_concurrency": map[string]interface{}{
			"type":        "integer",
			"description": "Upper bound on simultaneous recognition passes. 0 = available hardware parallelism",
		},
		"batch_size": map[string]interface{}{
			"type":        "integer",
			"description": "Advisory sizing hint, no behavioral contract",
		},
	}
	for k, v := range optionProperties() {
		batchProps[k] = v
	}

	return []Tool{
		{
			Name:        "ocr_recognize",
			Description: "Recognize text in a single image. Returns the assembled text, the mean confidence, and one observation per accepted text region with a normalized bottom-left-origin bounding box.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": recognizeProps,
			},
		},
		{
			Name:        "ocr_recognize_batch",
			Description: "Recognize text in multiple images concurrently under a concurrency cap. Returns one result slot per input path, index-aligned; failed items carry an error in their slot without affecting the rest.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": batchProps,
				"required":   []string{"paths"},
			},
		},
		{
			Name:        "image_info",
			Description: "Return metadata for an image file: dimensions, format, color depth, alpha presence, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ocr_engine_info",
			Description: "Report the recognition backend's availability and version.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
