// Package logging provides a minimal logging interface and adapters for the
// voice assistant.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the runner, agents and tools use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - AssistantLogger with room/agent context helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal so any structured
// logger can be plugged in.
package logging
