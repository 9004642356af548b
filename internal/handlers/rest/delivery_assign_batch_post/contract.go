//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_assign_batch_post_test
package delivery_assign_batch_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignBatch(ctx context.Context, tag, courierID string) (int64, error)
}
