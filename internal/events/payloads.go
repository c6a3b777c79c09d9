package events

import "github.com/yzxsolutions/soofi-mandi-sub000/internal/model"

// OrderCreatedPayload accompanies TopicOrderCreated.
type OrderCreatedPayload struct {
	Number string  `json:"number"`
	Total  float64 `json:"total"`
}

// StatusChangedPayload accompanies TopicOrderStatusChanged.
type StatusChangedPayload struct {
	From model.OrderStatus `json:"from"`
	To   model.OrderStatus `json:"to"`
}
