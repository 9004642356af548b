package courier

import "time"

type CourierDB struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	VehicleType     string
	VehiclePlate    string
	VehicleModel    string
	VehicleColor    string
	VehicleVerified bool
	IsActive        bool
	Verified        bool
	ReportedStatus  string
	LocationLat     *float64
	LocationLng     *float64
	LocationAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
