package services

import (
	"time"

	"github.com/google/uuid"
	pubnub "github.com/pubnub/go"
)

// Notifier publishes best-effort realtime inventory updates. A nil
// receiver or nil PubNub client turns every publish into a no-op, so
// the booking flow never depends on the realtime channel.
type Notifier struct {
	pubnub  *pubnub.PubNub
	channel string
}

func NewNotifier(pn *pubnub.PubNub, channel string) *Notifier {
	return &Notifier{pubnub: pn, channel: channel}
}

func (n *Notifier) PublishInventoryEvent(event string, payload map[string]any) {
	if n == nil || n.pubnub == nil {
		return
	}

	message := map[string]any{
		"type":       event,
		"message_id": uuid.NewString(),
		"sent_at":    time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range payload {
		message[k] = v
	}

	n.pubnub.Publish().
		Channel(n.channel).
		Message(message).
		Execute()
}
