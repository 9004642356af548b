// Package view maps domain entities to transport DTOs shared by the
// REST handlers.
package view

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
)

func DeliveryDTO(e *entities.Delivery) dto.Delivery {
	record := dto.Delivery{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		CourierID:     e.CourierID,
		Pickup:        AddressDTO(e.Pickup),
		Dropoff:       AddressDTO(e.Dropoff),
		GoodsType:     e.GoodsType,
		GoodsSize:     e.GoodsSize,
		Cost:          e.Cost,
		Status:        e.Status.String(),
		PaymentStatus: e.PaymentStatus.String(),
		Tag:           e.Tag,
		TrackingID:    e.TrackingID,
		ReceiverPhone: e.ReceiverPhone,
		Rating:        e.Rating,
		AssignedAt:    e.AssignedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	record.History = make([]dto.HistoryEntry, len(e.History))
	for i, entry := range e.History {
		record.History[i] = dto.HistoryEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		}
	}
	return record
}

func DeliveryDTOList(list []entities.Delivery) []dto.Delivery {
	result := make([]dto.Delivery, len(list))
	for i := range list {
		result[i] = DeliveryDTO(&list[i])
	}
	return result
}

func CourierDTO(e *entities.Courier) dto.Courier {
	return dto.Courier{
		ID:    e.ID,
		Name:  e.Name,
		Phone: e.Phone,
		Email: e.Email,
		Vehicle: dto.Vehicle{
			Type:     e.Vehicle.Type,
			Plate:    e.Vehicle.Plate,
			Model:    e.Vehicle.Model,
			Color:    e.Vehicle.Color,
			Verified: e.Vehicle.Verified,
		},
		IsActive:       e.IsActive,
		Verified:       e.Verified,
		ReportedStatus: e.ReportedStatus.String(),
		Location:       GeoPointDTO(e.Location),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func AddressDTO(a entities.Address) dto.Address {
	return dto.Address{
		Text: a.Text,
		Geo:  GeoPointDTO(a.Geo),
	}
}

func GeoPointDTO(p *entities.GeoPoint) *dto.GeoPoint {
	if p == nil {
		return nil
	}
	ts := p.Timestamp
	return &dto.GeoPoint{
		Lat:       p.Lat,
		Lng:       p.Lng,
		Timestamp: &ts,
	}
}

func AddressEntity(a dto.Address) entities.Address {
	return entities.Address{
		Text: a.Text,
		Geo:  GeoPointEntity(a.Geo),
	}
}

func GeoPointEntity(p *dto.GeoPoint) *entities.GeoPoint {
	if p == nil {
		return nil
	}
	point := entities.GeoPoint{
		Lat: p.Lat,
		Lng: p.Lng,
	}
	if p.Timestamp != nil {
		point.Timestamp = *p.Timestamp
	}
	return &point
}
