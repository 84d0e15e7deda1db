package services

import (
	"time"

	"restopos/entity"
)

// OrderEvent is what kitchen displays receive over the websocket feed.
type OrderEvent struct {
	Kind        string             `json:"kind"` // "order.created" | "order.status"
	OrderID     uint               `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	OrderType   entity.OrderType   `json:"orderType"`
	TableID     *uint              `json:"tableId,omitempty"`
	Status      entity.OrderStatus `json:"status"`
	At          time.Time          `json:"at"`
}

// EventPublisher decouples the order service from the websocket hub.
type EventPublisher interface {
	PublishOrderEvent(ev OrderEvent)
}
