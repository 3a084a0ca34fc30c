// Package mcp exposes a tool catalog over the Model Context Protocol.
//
// [New] builds a [Server] that registers every tool from a [tool.Catalog]
// with an underlying MCP server: the advertised name, description, and
// parameter schema come straight from each tool's ToolInfo, and incoming
// call requests are dispatched through the catalog's GenericTool.Call path.
// Tool failures (invalid input, evaluation errors) are returned to the host
// as protocol-level tool errors, not transport failures.
//
// [Server.ServeStdio] runs the stdio transport until the host closes the
// connection.
package mcp
