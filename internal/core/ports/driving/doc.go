// Package driving lists the operations the command line, HTTP API, MCP
// server and terminal UI call on the core. internal/core/services
// implements them.
package driving
