package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// LogNotifier writes every event to the structured log.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, ev Event) error {
	n.Logger.Info().
		Str("topic", ev.Topic).
		Str("order_id", ev.OrderID.String()).
		Time("occurred_at", ev.OccurredAt).
		Msg("order event")
	return nil
}

// MetricsNotifier counts order lifecycle events.
type MetricsNotifier struct {
	created     prometheus.Counter
	transitions *prometheus.CounterVec
}

// NewMetricsNotifier registers and returns the order event collectors.
func NewMetricsNotifier(namespace string, reg prometheus.Registerer) *MetricsNotifier {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	n := &MetricsNotifier{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders successfully placed.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Total number of order status transitions.",
		}, []string{"to_status"}),
	}
	reg.MustRegister(n.created, n.transitions)
	return n
}

// Notify implements Notifier.
func (n *MetricsNotifier) Notify(_ context.Context, ev Event) error {
	switch ev.Topic {
	case TopicOrderCreated:
		n.created.Inc()
	case TopicOrderStatusChanged:
		if p, ok := ev.Payload.(StatusChangedPayload); ok {
			n.transitions.WithLabelValues(string(p.To)).Inc()
		}
	}
	return nil
}
