package services

import (
	"restopos/entity"
)

// orderTransitions is the full set of legal status moves. Anything absent is
// rejected; terminal states have no outgoing edges at all.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderReady, entity.OrderCancelled},
	entity.OrderReady:     {entity.OrderCompleted, entity.OrderCancelled},
	entity.OrderCompleted: {},
	entity.OrderCancelled: {},
}

func transitionAllowed(from, to entity.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// reconcileAfter reports whether entering this state must re-derive the
// table's occupancy.
func reconcileAfter(to entity.OrderStatus) bool {
	return to.Terminal()
}

// settleAfter reports whether entering this state force-settles the bill.
func settleAfter(to entity.OrderStatus) bool {
	return to == entity.OrderCompleted
}
