package entities

import "time"

type Delivery struct {
	ID            string
	CustomerID    string
	CourierID     *string
	Pickup        Address
	Dropoff       Address
	GoodsType     string
	GoodsSize     string
	Cost          float64
	Status        DeliveryStatusType
	PaymentStatus PaymentStatusType
	Tag           *string
	TrackingID    *string
	ReceiverPhone string
	Rating        *int
	History       []HistoryEntry
	AssignedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HistoryEntry is one element of the append-only delivery audit trail.
type HistoryEntry struct {
	Status    DeliveryStatusType `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

type Address struct {
	Text string
	Geo  *GeoPoint
}

type GeoPoint struct {
	Lat       float64
	Lng       float64
	Timestamp time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending        DeliveryStatusType = "pending"
	DeliveryAssigned       DeliveryStatusType = "assigned"
	DeliveryPickedUp       DeliveryStatusType = "picked_up"
	DeliveryAtStation      DeliveryStatusType = "at_station"
	DeliveryOutForDelivery DeliveryStatusType = "out_for_delivery"
	DeliveryDelivered      DeliveryStatusType = "delivered"
	DeliveryReceived       DeliveryStatusType = "received"
	DeliveryCancelled      DeliveryStatusType = "cancelled"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

// IsTerminal reports whether no further transitions are expected
// and the delivery no longer occupies its courier.
func (t DeliveryStatusType) IsTerminal() bool {
	switch t {
	case DeliveryDelivered, DeliveryReceived, DeliveryCancelled:
		return true
	default:
		return false
	}
}

// RequiresCourier reports whether the status is only legal with a courier bound.
func (t DeliveryStatusType) RequiresCourier() bool {
	switch t {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryAtStation,
		DeliveryOutForDelivery, DeliveryDelivered, DeliveryReceived:
		return true
	default:
		return false
	}
}

type PaymentStatusType string

const (
	PaymentPending       PaymentStatusType = "pending"
	PaymentPaid          PaymentStatusType = "paid"
	PaymentUnpaid        PaymentStatusType = "unpaid"
	PaymentPartiallyPaid PaymentStatusType = "partially_paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryModify struct {
	ID            *string
	CustomerID    *string
	CourierID     *string
	Pickup        *Address
	Dropoff       *Address
	GoodsType     *string
	GoodsSize     *string
	Cost          *float64
	Tag           *string
	TrackingID    *string
	ReceiverPhone *string
}

// BatchItem carries the per-item fields of a batch; everything else
// is shared across the batch.
type BatchItem struct {
	Dropoff       Address
	ReceiverPhone string
}

type BatchCreate struct {
	CustomerID string
	Pickup     Address
	GoodsType  string
	GoodsSize  string
	Cost       float64
	Items      []BatchItem
}

// DeliveryFilter narrows ListDeliveries. Nil fields mean "no constraint".
type DeliveryFilter struct {
	StatusClass *StatusClass
	CustomerID  *string
	CourierID   *string
	Tag         *string
	HasTag      *bool
}

type StatusClass string

const (
	// StatusClassActive covers assigned through out_for_delivery:
	// the delivery occupies a courier and is still moving.
	StatusClassActive   StatusClass = "active"
	StatusClassPending  StatusClass = "pending"
	StatusClassTerminal StatusClass = "terminal"
)

// Statuses expands the class into its member statuses.
func (c StatusClass) Statuses() []DeliveryStatusType {
	switch c {
	case StatusClassActive:
		return []DeliveryStatusType{
			DeliveryAssigned, DeliveryPickedUp, DeliveryAtStation, DeliveryOutForDelivery,
		}
	case StatusClassPending:
		return []DeliveryStatusType{DeliveryPending}
	case StatusClassTerminal:
		return []DeliveryStatusType{DeliveryDelivered, DeliveryReceived, DeliveryCancelled}
	default:
		return nil
	}
}
