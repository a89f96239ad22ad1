package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coder/websocket"

	"github.com/theaftaab/govassist/logging"
)

// Envelope is the wire message in both directions. Inbound types are
// "utterance" and "data"; outbound types are "message" and "topic".
type Envelope struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Topic    string          `json:"topic,omitempty"`
	Reliable bool            `json:"reliable,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	TypeUtterance = "utterance"
	TypeData      = "data"
	TypeMessage   = "message"
	TypeTopic     = "topic"
)

// Conn adapts a websocket connection to the frontend publisher contract.
// Writes are mutex protected because websocket connections do not support
// concurrent writers.
type Conn struct {
	conn   *websocket.Conn
	logger *logging.AssistantLogger

	mu     sync.Mutex
	closed bool
}

// NewConn wraps an accepted or dialed websocket connection.
func NewConn(conn *websocket.Conn, logger *logging.AssistantLogger) *Conn {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Conn{
		conn:   conn,
		logger: logger.WithComponent("ws_conn"),
	}
}

// Publish implements frontend.Publisher: the payload travels to the client
// as a topic envelope.
func (c *Conn) Publish(ctx context.Context, topic string, payload []byte, reliable bool) error {
	return c.write(ctx, Envelope{
		Type:     TypeTopic,
		Topic:    topic,
		Reliable: reliable,
		Payload:  json.RawMessage(payload),
	})
}

// SendMessage delivers one line of agent speech to the client.
func (c *Conn) SendMessage(ctx context.Context, text string) error {
	return c.write(ctx, Envelope{Type: TypeMessage, Text: text})
}

// Read blocks for the next inbound envelope.
func (c *Conn) Read(ctx context.Context) (*Envelope, error) {
	if c.isClosed() {
		return nil, fmt.Errorf("connection closed")
	}
	_, data, err := c.conn.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("websocket read: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return &env, nil
}

func (c *Conn) write(ctx context.Context, env Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("connection closed")
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("websocket write: %w", err)
	}
	return nil
}

// Close shuts the connection down. Subsequent closes are no-ops.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close(websocket.StatusNormalClosure, "closing")
}

func (c *Conn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
