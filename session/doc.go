// Package session owns the per-room conversation state: selected language,
// active agent, the form records being filled and the per-agent chat
// histories. One State exists per connected room and is shared by the turn
// loop and the frontend data channel, so all access is mutex guarded.
package session
