package frontend

import (
	"context"
	"encoding/json"

	"github.com/theaftaab/govassist/logging"
)

// Topics used on the data channel. The frontend subscribes per topic.
const (
	TopicFormUpdate = "formUpdate"
	TopicNavigation = "navigation"
	TopicError      = "error"
)

// Publisher sends an encoded payload to the frontend on a topic. Reliable
// publishes must be retried or acknowledged by the transport; best-effort
// ones may be dropped.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, reliable bool) error
}

// Notifier is the agents' sending surface. Best-effort sends swallow
// transport errors after logging them so a flaky connection never interrupts
// the conversation; only reliable sends propagate failure.
type Notifier struct {
	pub    Publisher
	logger *logging.AssistantLogger
}

// NewNotifier wires a Notifier to a transport publisher.
func NewNotifier(pub Publisher, logger *logging.AssistantLogger) *Notifier {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Notifier{pub: pub, logger: logger.WithComponent("frontend")}
}

func (n *Notifier) send(ctx context.Context, topic string, data map[string]any, reliable bool) error {
	if n.pub == nil {
		n.logger.Warn("send requested with no publisher attached")
		return nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		n.logger.LogFrontendSend(topic, reliable, false, err)
		return err
	}
	err = n.pub.Publish(ctx, topic, payload, reliable)
	n.logger.LogFrontendSend(topic, reliable, err == nil, err)
	if err != nil && !reliable {
		return nil
	}
	return err
}

// SendFieldUpdate mirrors a single collected answer to the form, keyed by
// the frontend's field name. Best effort.
func (n *Notifier) SendFieldUpdate(ctx context.Context, field string, value any) error {
	return n.send(ctx, TopicFormUpdate, map[string]any{field: value}, false)
}

// SendBulkUpdate mirrors several answers at once, e.g. after restoring a
// partially filled session. Best effort.
func (n *Notifier) SendBulkUpdate(ctx context.Context, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	data := make(map[string]any, len(updates))
	for k, v := range updates {
		data[k] = v
	}
	return n.send(ctx, TopicFormUpdate, data, false)
}

// TriggerSubmit tells the form to submit itself. This is the one form update
// that must arrive, so it is sent reliably and the error surfaces.
func (n *Notifier) TriggerSubmit(ctx context.Context) error {
	return n.send(ctx, TopicFormUpdate, map[string]any{"should_submit": true}, true)
}

// SendRoute asks the frontend to navigate to a page. Best effort.
func (n *Notifier) SendRoute(ctx context.Context, route string) error {
	return n.send(ctx, TopicNavigation, map[string]any{"route": route}, false)
}

// SendError surfaces a user-visible error banner. Sent reliably.
func (n *Notifier) SendError(ctx context.Context, message, code string) error {
	data := map[string]any{"error": message}
	if code != "" {
		data["code"] = code
	}
	return n.send(ctx, TopicError, data, true)
}
