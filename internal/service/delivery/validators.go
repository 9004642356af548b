package delivery

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryPending, entities.DeliveryAssigned, entities.DeliveryPickedUp,
		entities.DeliveryAtStation, entities.DeliveryOutForDelivery,
		entities.DeliveryDelivered, entities.DeliveryReceived, entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}

func isValidPaymentStatus(status entities.PaymentStatusType) bool {
	switch status {
	case entities.PaymentPending, entities.PaymentPaid,
		entities.PaymentUnpaid, entities.PaymentPartiallyPaid:
		return true
	default:
		return false
	}
}

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func hasAddress(a *entities.Address) bool {
	return a != nil && strings.TrimSpace(a.Text) != ""
}
