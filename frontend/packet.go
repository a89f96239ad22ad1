package frontend

import (
	"encoding/json"
	"fmt"
)

// DataPacket is an inbound message from the frontend reporting a field the
// user filled directly on the form. The field name is the frontend's key,
// not the internal one.
type DataPacket struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// DecodePacket parses an inbound data channel payload. Packets with a
// missing field name or empty value are reported as errors; the caller
// decides whether to log or drop them.
func DecodePacket(payload []byte) (DataPacket, error) {
	var p DataPacket
	if err := json.Unmarshal(payload, &p); err != nil {
		return DataPacket{}, fmt.Errorf("decode data packet: %w", err)
	}
	if p.Field == "" || p.Value == "" {
		return DataPacket{}, fmt.Errorf("data packet missing field or value: %s", payload)
	}
	return p, nil
}
