// Package tools implements the MCP tool handlers for the context
// engineering server.
//
// Each tool is a struct that receives its dependencies via constructor
// and exposes Definition() for registration plus Handle() compatible
// with mcp-go's CallToolRequest signature. Caller mistakes (bad
// arguments, missing files) are returned as tool errors via
// mcp.NewToolResultError; Go errors are reserved for protocol failures.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
