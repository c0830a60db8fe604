package server

import (
	"encoding/json"
	"image"
	"testing"

	"github.com/ironsheep/ocr-batch-mcp/internal/ocr"
)

// echoRecognizer returns a fixed single region for any image.
func echoRecognizer(text string, confidence float64) ocr.Recognizer {
	return ocr.RecognizerFunc(func(img image.Image, opts ocr.Options) ([]ocr.Region, error) {
		return []ocr.Region{{
			Candidates: []ocr.Candidate{{Text: text, Confidence: confidence}},
			Box:        ocr.Box{X: 0.1, Y: 0.5, Width: 0.4, Height: 0.1},
		}}, nil
	})
}

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.engine == nil {
		t.Fatal("New() did not initialize engine")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := NewWithRecognizer(echoRecognizer("x", 0.9))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "ping"})
	if resp == nil {
		t.Fatal("ping returned nil response")
	}
	if resp.Error != nil {
		t.Errorf("ping returned error: %v", resp.Error)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := NewWithRecognizer(echoRecognizer("x", 0.9))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "bogus/method"})
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandleRequest_InitializedNotification(t *testing.T) {
	s := NewWithRecognizer(echoRecognizer("x", 0.9))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Error("notification must not produce a response")
	}
}

func TestHandleInitialize(t *testing.T) {
	s := NewWithRecognizer(echoRecognizer("x", 0.9))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("initialize failed: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo missing")
	}
	if info["name"] != "ocr-batch-mcp" {
		t.Errorf("server name: got %v, want ocr-batch-mcp", info["name"])
	}
}

func TestHandleToolsList(t *testing.T) {
	s := NewWithRecognizer(echoRecognizer("x", 0.9))
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("unexpected tools type: %T", result["tools"])
	}
	if len(tools) != 4 {
		t.Errorf("tool count: got %d, want 4", len(tools))
	}
}
