package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrUnknownStatus         = errors.New("unknown delivery status")
	ErrUnknownPaymentStatus  = errors.New("unknown payment status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrNotCompleted      = errors.New("delivery is not completed yet")
	ErrEmptyBatch        = errors.New("batch has no items")
)
