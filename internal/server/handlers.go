package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/ocr-batch-mcp/internal/imaging"
	"github.com/ironsheep/ocr-batch-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ocr_recognize").
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
	case "ocr_recognize":
		return s.handleRecognize(args)
	case "ocr_recognize_batch":
		return s.handleRecognizeBatch(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "ocr_engine_info":
		return s.handleEngineInfo(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Payload types ===

// recognizePayload is the wire form of one ocr.Result. The error, when
// present, is serialized as a string so failed batch slots survive JSON
// marshaling.
type recognizePayload struct {
	Text         string            `json:"text"`
	Confidence   float64           `json:"confidence"`
	Observations []ocr.Observation `json:"observations"`
	Error        string            `json:"error,omitempty"`
}

type batchPayload struct {
	Results     []recognizePayload `json:"results"`
	Count       int                `json:"count"`
	FailedCount int                `json:"failed_count"`
}

func toRecognizePayload(res *ocr.Result) recognizePayload {
	p := recognizePayload{
		Text:         res.Text,
		Confidence:   res.Confidence,
		Observations: res.Observations,
	}
	if p.Observations == nil {
		p.Observations = []ocr.Observation{}
	}
	if res.Err != nil {
		p.Error = res.Err.Error()
	}
	return p
}

// === Option parsing ===

type optionArgs struct {
	Languages        []string `json:"languages"`
	RecognitionLevel string   `json:"recognition_level"`
	MinConfidence    float64  `json:"min_confidence"`
}

func (a optionArgs) toOptions() (ocr.Options, error) {
	level, err := ocr.ParseLevel(a.RecognitionLevel)
	if err != nil {
		return ocr.Options{}, err
	}
	if a.MinConfidence < 0 || a.MinConfidence > 1 {
		return ocr.Options{}, fmt.Errorf("min_confidence out of range: %v", a.MinConfidence)
	}
	opts := ocr.DefaultOptions()
	opts.Level = level
	opts.MinConfidence = a.MinConfidence
	if len(a.Languages) > 0 {
		opts.Languages = a.Languages
	}
	return opts, nil
}

// === OCR Handlers ===

type recognizeArgs struct {
	Path string `json:"path"`
	Data string `json:"data"`
	optionArgs
}

func (s *Server) handleRecognize(args json.RawMessage) (interface{}, error) {
	var a recognizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" && a.Data == "" {
		return nil, errors.New("either path or data is required")
	}
	if a.Path != "" && a.Data != "" {
		return nil, errors.New("path and data are mutually exclusive")
	}

	opts, err := a.toOptions()
	if err != nil {
		return nil, err
	}

	var src imaging.Source
	if a.Path != "" {
		src = imaging.FromPath(a.Path)
	} else {
		raw, err := base64.StdEncoding.DecodeString(a.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data: %w", err)
		}
		if len(raw) == 0 {
			return nil, errors.New("empty image data")
		}
		src = imaging.FromBuffer(raw)
	}

	res, _ := s.engine.RecognizeAsync(src, opts).Wait()
	return toRecognizePayload(res), nil
}

type recognizeBatchArgs struct {
	Paths          []string `json:"paths"`
	MaxConcurrency int      `json:"max_concurrency"`
	BatchSize      int      `json:"batch_size"`
	optionArgs
}

func (s *Server) handleRecognizeBatch(args json.RawMessage) (interface{}, error) {
	var a recognizeBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts, err := a.toOptions()
	if err != nil {
		return nil, err
	}
	batchOpts := ocr.BatchOptions{
		Options:        opts,
		MaxConcurrency: a.MaxConcurrency,
		BatchSize:      a.BatchSize,
	}

	items := make([]imaging.Source, len(a.Paths))
	for i, p := range a.Paths {
		items[i] = imaging.FromPath(p)
	}

	batch, err := s.engine.RecognizeBatchAsync(items, batchOpts).Wait()
	if err != nil {
		return nil, err
	}

	payload := batchPayload{
		Results:     make([]recognizePayload, len(batch.Results)),
		Count:       batch.Count,
		FailedCount: batch.FailedCount,
	}
	for i, res := range batch.Results {
		payload.Results[i] = toRecognizePayload(res)
	}
	return payload, nil
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return imaging.LoadInfo(a.Path)
}

func (s *Server) handleEngineInfo(args json.RawMessage) (interface{}, error) {
	return ocr.NewTesseract().Info(), nil
}
