package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolDescription is the tool description
	AttrToolDescription = "tool.description"

	// AttrToolInput is the tool input (serialized)
	AttrToolInput = "tool.input"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"
)

// --- Server Attributes ---

const (
	// AttrServerName is the advertised name of the tool server
	AttrServerName = "server.name"

	// AttrServerVersion is the advertised version of the tool server
	AttrServerVersion = "server.version"

	// AttrServerTransport is the transport the server listens on (e.g. "stdio")
	AttrServerTransport = "server.transport"

	// AttrToolsCount is the number of tools registered with the server
	AttrToolsCount = "server.tools_count"
)

// --- Status Attributes ---

const (
	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Event Names ---

const (
	// EventToolExecutionStart marks the start of tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of tool execution
	EventToolExecutionEnd = "tool.execution.end"

	// EventServerStart marks the start of the stdio serve loop
	EventServerStart = "server.start"

	// EventServerStop marks the end of the stdio serve loop
	EventServerStop = "server.stop"
)
