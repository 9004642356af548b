package assignment

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidTag        = errors.New("invalid batch tag")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrCourierNotFound  = errors.New("courier not found")
	ErrAlreadyAssigned  = errors.New("delivery already has a courier")
	ErrBatchWriteFailed = errors.New("batch assignment write failed")
)
