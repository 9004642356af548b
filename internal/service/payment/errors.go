package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("delivery id and payment status are required")
	ErrUndefinedStatus       = errors.New("undefined payment status")
)
