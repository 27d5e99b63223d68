// Package server implements an MCP (Model Context Protocol) server that
// exposes the Sobel edge map as tools.
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
// # Available Tools
//
//   - image_load: Load image and get metadata, including channel count
//   - image_dimensions: Get width and height
//   - image_sobel: Gradient-magnitude edge map as base64 PNG, optionally
//     also written to a file
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server process,
// so repeated tool calls on one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
