package delivery

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) (*entities.Delivery, error) {
	if d == nil {
		return nil, nil
	}

	var history []entities.HistoryEntry
	if len(d.History) > 0 {
		if err := json.Unmarshal(d.History, &history); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}

	return &entities.Delivery{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		CourierID:     d.CourierID,
		Pickup:        toAddress(d.PickupText, d.PickupLat, d.PickupLng),
		Dropoff:       toAddress(d.DropoffText, d.DropoffLat, d.DropoffLng),
		GoodsType:     d.GoodsType,
		GoodsSize:     d.GoodsSize,
		Cost:          d.Cost,
		Status:        entities.DeliveryStatusType(d.Status),
		PaymentStatus: entities.PaymentStatusType(d.PaymentStatus),
		Tag:           d.Tag,
		TrackingID:    d.TrackingID,
		ReceiverPhone: d.ReceiverPhone,
		Rating:        d.Rating,
		History:       history,
		AssignedAt:    d.AssignedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

func toAddress(text string, lat, lng *float64) entities.Address {
	address := entities.Address{Text: text}
	if lat != nil && lng != nil {
		address.Geo = &entities.GeoPoint{Lat: *lat, Lng: *lng}
	}
	return address
}

func fromAddress(a entities.Address) (text string, lat, lng *float64) {
	text = a.Text
	if a.Geo != nil {
		lat, lng = &a.Geo.Lat, &a.Geo.Lng
	}
	return text, lat, lng
}
