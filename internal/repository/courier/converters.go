package courier

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	record := &entities.Courier{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		Vehicle: entities.Vehicle{
			Type:     c.VehicleType,
			Plate:    c.VehiclePlate,
			Model:    c.VehicleModel,
			Color:    c.VehicleColor,
			Verified: c.VehicleVerified,
		},
		IsActive:       c.IsActive,
		Verified:       c.Verified,
		ReportedStatus: entities.CourierReportedStatus(c.ReportedStatus),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}

	if c.LocationLat != nil && c.LocationLng != nil {
		var at time.Time
		if c.LocationAt != nil {
			at = *c.LocationAt
		}
		record.Location = &entities.GeoPoint{
			Lat:       *c.LocationLat,
			Lng:       *c.LocationLng,
			Timestamp: at,
		}
	}
	return record
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
