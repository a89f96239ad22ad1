// Package ws exposes the assistant over a WebSocket endpoint. Each
// connection is one room: user utterances and form data packets arrive as
// JSON envelopes, and agent speech plus frontend topic publishes go back
// over the same connection.
package ws
