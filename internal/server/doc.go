// Package server implements the MCP (Model Context Protocol) surface of the
// batch OCR engine.
//
// This package provides a JSON-RPC 2.0 server that exposes text recognition
// through the MCP protocol, for use from Claude and other MCP-compatible
// clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Error model
//
// Input validation failures (missing path, malformed base64, options out of
// range) and batch-level failures (empty path list) surface as JSON-RPC
// errors. Per-item recognition failures inside a batch never do: they are
// serialized into their slot of the result payload, and the caller inspects
// failed_count and each slot's error field.
package server
