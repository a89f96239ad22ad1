package session

import "strings"

// AgentFromRoom extracts an agent pre-selection token from a room name.
// Rooms named with a "__agent=<kind>__" segment skip the greeting and start
// directly on that agent with English preset. Returns ok=false when the
// token is absent or empty.
func AgentFromRoom(room string) (string, bool) {
	const marker = "__agent="
	i := strings.Index(room, marker)
	if i < 0 {
		return "", false
	}
	rest := room[i+len(marker):]
	j := strings.Index(rest, "__")
	if j <= 0 {
		return "", false
	}
	return rest[:j], true
}
