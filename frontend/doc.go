// Package frontend carries structured updates between the assistant and the
// browser form over a data channel. Outbound messages are JSON payloads on a
// small set of topics; inbound packets report fields the user filled by hand
// so the conversation can skip them.
package frontend
