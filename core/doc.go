// Package core defines the conversational primitives shared by every other
// package: events with stable identifiers, role-based content parts, and the
// per-agent chat context that agent handoffs stitch together.
package core
