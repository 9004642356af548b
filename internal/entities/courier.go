package entities

import "time"

type Courier struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Vehicle        Vehicle
	IsActive       bool
	Verified       bool
	ReportedStatus CourierReportedStatus
	Location       *GeoPoint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Vehicle struct {
	Type     string
	Plate    string
	Model    string
	Color    string
	Verified bool
}

// CourierReportedStatus is what the rider's own app last claimed.
// It is a hint only: the dispatch board derives the authoritative
// bucket from delivery linkage, never from this field.
type CourierReportedStatus string

const (
	ReportedAvailable  CourierReportedStatus = "available"
	ReportedOnDelivery CourierReportedStatus = "on_delivery"
	ReportedOffline    CourierReportedStatus = "offline"
)

func (s CourierReportedStatus) String() string {
	return string(s)
}

type CourierModify struct {
	ID             *string
	Name           *string
	Phone          *string
	Email          *string
	Vehicle        *Vehicle
	IsActive       *bool
	Verified       *bool
	ReportedStatus *CourierReportedStatus
}
