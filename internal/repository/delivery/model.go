package delivery

import "time"

type DeliveryDB struct {
	ID            string
	CustomerID    string
	CourierID     *string
	PickupText    string
	PickupLat     *float64
	PickupLng     *float64
	DropoffText   string
	DropoffLat    *float64
	DropoffLng    *float64
	GoodsType     string
	GoodsSize     string
	Cost          float64
	Status        string
	PaymentStatus string
	Tag           *string
	TrackingID    *string
	ReceiverPhone string
	Rating        *int
	History       []byte
	AssignedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
