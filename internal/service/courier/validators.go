package courier

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return len(phone) > 1
}

func isValidReportedStatus(status entities.CourierReportedStatus) bool {
	switch status {
	case entities.ReportedAvailable, entities.ReportedOnDelivery, entities.ReportedOffline:
		return true
	default:
		return false
	}
}

func isValidLocation(point entities.GeoPoint) bool {
	return point.Lat >= -90 && point.Lat <= 90 &&
		point.Lng >= -180 && point.Lng <= 180
}
