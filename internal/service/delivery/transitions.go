package delivery

import "dispatch/internal/entities"

// forward is the delivery state machine: strictly forward, no skips,
// no back-edges. cancelled is reachable from every non-terminal state;
// the only edge out of delivered is the customer confirming receipt.
var forward = map[entities.DeliveryStatusType][]entities.DeliveryStatusType{
	entities.DeliveryPending:        {entities.DeliveryAssigned, entities.DeliveryCancelled},
	entities.DeliveryAssigned:       {entities.DeliveryPickedUp, entities.DeliveryCancelled},
	entities.DeliveryPickedUp:       {entities.DeliveryAtStation, entities.DeliveryCancelled},
	entities.DeliveryAtStation:      {entities.DeliveryOutForDelivery, entities.DeliveryCancelled},
	entities.DeliveryOutForDelivery: {entities.DeliveryDelivered, entities.DeliveryCancelled},
	entities.DeliveryDelivered:      {entities.DeliveryReceived},
	entities.DeliveryReceived:       {},
	entities.DeliveryCancelled:      {},
}

func canTransition(from, to entities.DeliveryStatusType) bool {
	for _, next := range forward[from] {
		if next == to {
			return true
		}
	}
	return false
}
