// Package runner drives the conversation of each room: it bootstraps the
// session, feeds user utterances through the model turn loop, dispatches
// tool calls, performs agent handoffs and applies frontend data packets.
package runner
