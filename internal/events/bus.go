// Package events fans order lifecycle events out to in-process notifiers.
package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Topics emitted by the order service.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
)

// Event is one order lifecycle occurrence.
type Event struct {
	Topic      string
	OrderID    uuid.UUID
	Payload    any
	OccurredAt time.Time
}

// Notifier reacts to emitted events (logging, metrics, etc.).
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Bus dispatches events to all configured notifiers. Notifier failures are
// joined and reported but never abort the dispatch to the remaining ones.
type Bus struct {
	Notifiers []Notifier
	Now       func() time.Time
}

// Emit dispatches the event to every notifier.
func (b *Bus) Emit(ctx context.Context, topic string, orderID uuid.UUID, payload any) error {
	if b == nil {
		return nil
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("events: topic is required")
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	ev := Event{Topic: topic, OrderID: orderID, Payload: payload, OccurredAt: now()}

	var joined error
	for _, notifier := range b.Notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, ev); err != nil {
			joined = errors.Join(joined, err)
		}
	}
	return joined
}
