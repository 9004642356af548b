package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid courier name")
	ErrInvalidPhone          = errors.New("invalid courier phone")
	ErrInvalidStatus         = errors.New("invalid reported status")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrCourierNotFound            = errors.New("courier not found")
	ErrConflict                   = errors.New("courier already exists")
	ErrCourierHasActiveDeliveries = errors.New("courier has active deliveries")
)
