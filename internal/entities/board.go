package entities

// CourierBucket is the derived availability of a courier on the dispatch
// board. Exactly one bucket applies to every courier.
type CourierBucket string

const (
	BucketOffline    CourierBucket = "offline"
	BucketOnDelivery CourierBucket = "on_delivery"
	BucketAvailable  CourierBucket = "available"
)

func (b CourierBucket) String() string {
	return string(b)
}

// Board is the live aggregation view: recomputed in full from the two
// stores on every read, never persisted.
type Board struct {
	Buckets map[string]CourierBucket // courier id -> bucket
	Links   []BoardLink
}

// BoardLink pairs a courier on an active run with one of their
// deliveries, for the map overlay (marker + connecting line).
type BoardLink struct {
	CourierID       string
	DeliveryID      string
	Pickup          Address
	CourierLocation *GeoPoint
}

type CourierStats struct {
	CourierID     string
	DeliveryCount int
	// AvgRating is nil when the courier has no rated deliveries;
	// it is never reported as zero.
	AvgRating *float64
}
