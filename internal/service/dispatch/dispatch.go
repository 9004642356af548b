package dispatch

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Dispatch derives the live board from the delivery and courier stores.
// Nothing is materialized: every call recomputes from fresh reads, so
// correctness depends only on the freshness of the two fetches.
type Dispatch struct {
	deliveryService DeliveryService
	courierService  CourierService
}

func New(deliveryService DeliveryService, courierService CourierService) *Dispatch {
	return &Dispatch{
		deliveryService: deliveryService,
		courierService:  courierService,
	}
}

func (s *Dispatch) Board(ctx context.Context) (*entities.Board, error) {
	deliveries, err := s.deliveryService.ListDeliveries(ctx, entities.DeliveryFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetch deliveries: %w", err)
	}

	couriers, err := s.courierService.GetCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch couriers: %w", err)
	}

	board := BuildBoard(deliveries, couriers)
	return board, nil
}

// BuildBoard computes the board from snapshots of the two stores.
//
// A courier with two active deliveries appears in the active set once.
// The three predicates are evaluated in priority order, so the partition
// is exhaustive and pairwise disjoint: offline beats on_delivery beats
// available.
func BuildBoard(deliveries []entities.Delivery, couriers []entities.Courier) *entities.Board {
	activeCourierIDs := ActiveCourierSet(deliveries)

	buckets := make(map[string]entities.CourierBucket, len(couriers))
	locations := make(map[string]*entities.GeoPoint, len(couriers))
	for _, c := range couriers {
		switch {
		case !c.IsActive:
			buckets[c.ID] = entities.BucketOffline
		case activeCourierIDs[c.ID]:
			buckets[c.ID] = entities.BucketOnDelivery
		default:
			buckets[c.ID] = entities.BucketAvailable
		}
		locations[c.ID] = c.Location
	}

	// Markers are drawn only for couriers mid-run; each is paired with the
	// pickup of the delivery it carries to draw the connecting line.
	links := make([]entities.BoardLink, 0, len(activeCourierIDs))
	for _, d := range deliveries {
		if d.CourierID == nil || d.Status.IsTerminal() {
			continue
		}
		if _, known := buckets[*d.CourierID]; !known {
			// delivery references a courier missing from the directory;
			// the weak reference carries no cascade, so just skip it
			continue
		}
		links = append(links, entities.BoardLink{
			CourierID:       *d.CourierID,
			DeliveryID:      d.ID,
			Pickup:          d.Pickup,
			CourierLocation: locations[*d.CourierID],
		})
	}

	return &entities.Board{
		Buckets: buckets,
		Links:   links,
	}
}

// ActiveCourierSet collects the couriers bound to at least one
// non-terminal delivery.
func ActiveCourierSet(deliveries []entities.Delivery) map[string]bool {
	set := make(map[string]bool)
	for _, d := range deliveries {
		if d.CourierID != nil && !d.Status.IsTerminal() {
			set[*d.CourierID] = true
		}
	}
	return set
}
