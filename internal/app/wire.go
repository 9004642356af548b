//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/courier_delete"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_location_put"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/courier_stats_get"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/deliveries_get"
	"dispatch/internal/handlers/rest/delivery_assign_batch_post"
	"dispatch/internal/handlers/rest/delivery_assign_post"
	"dispatch/internal/handlers/rest/delivery_batch_post"
	"dispatch/internal/handlers/rest/delivery_delete"
	"dispatch/internal/handlers/rest/delivery_get"
	"dispatch/internal/handlers/rest/delivery_payment_put"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_put"
	"dispatch/internal/handlers/rest/delivery_rating_put"
	"dispatch/internal/handlers/rest/delivery_status_put"
	"dispatch/internal/handlers/rest/dispatch_board_get"
	"dispatch/internal/handlers/tasks/board_metrics"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/payment_handle"

	courierRepo "dispatch/internal/repository/courier"
	deliveryRepo "dispatch/internal/repository/delivery"
	"dispatch/internal/repository/statscache"
	assignmentService "dispatch/internal/service/assignment"
	courierService "dispatch/internal/service/courier"
	deliveryService "dispatch/internal/service/delivery"
	dispatchService "dispatch/internal/service/dispatch"
	paymentService "dispatch/internal/service/payment"
	statsService "dispatch/internal/service/stats"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	BoardMetricsInterval time.Duration
	StatsTTL             time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceAssignment ServiceAssignment
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	ServiceStats      ServiceStats
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_batch_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_put.Service
	delivery_delete.Service
	delivery_status_put.Service
	delivery_payment_put.Service
	delivery_rating_put.Service
}

type ServiceAssignment interface {
	delivery_assign_post.Service
	delivery_assign_batch_post.Service
}

type ServiceCourier interface {
	courier_post.Service
	courier_put.Service
	courier_get.Service
	couriers_get.Service
	courier_delete.Service
	courier_location_put.Service
}

type ServiceDispatch interface {
	dispatch_board_get.Service
}

type ServiceStats interface {
	courier_stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsTTL,
		provideBoardMetricsInterval,

		provideCourierRepository,
		provideDeliveryRepository,
		provideStatsCache,

		provideServiceCourier,
		provideServiceDelivery,
		provideServiceAssignment,
		provideServiceDispatch,
		provideServiceStats,

		provideBoardMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.StatsInvalidator), new(*statsService.Stats)),
		wire.Bind(new(assignmentService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignmentService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(dispatchService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(dispatchService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(statsService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(statsService.Cache), new(*statscache.Cache)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(board_metrics.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsTTL,

		provideDeliveryRepository,
		provideStatsCache,

		provideServiceDelivery,
		provideServiceStats,

		provideStatusHandlerFactory,
		provideServicePayment,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.StatsInvalidator), new(*statsService.Stats)),
		wire.Bind(new(statsService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(statsService.Cache), new(*statscache.Cache)),
		wire.Bind(new(paymentService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(paymentService.HandlerFactory), new(*payment_handle.StatusHandlerFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideStatsCache(rdb *redis.Client) *statscache.Cache {
	return statscache.New(rdb)
}

func provideStatsTTL(cfg *config.Config) StatsTTL {
	return StatsTTL(cfg.Redis.StatsTTL)
}

func provideBoardMetricsInterval(cfg *config.Config) BoardMetricsInterval {
	return BoardMetricsInterval(cfg.Tasks.BoardMetricsInterval)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	stats deliveryService.StatsInvalidator,
	txManager deliveryService.TxManager,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(repository, stats, txManager, log)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	couriers assignmentService.CourierService,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, couriers, txManager)
}

func provideServiceDispatch(
	deliveries dispatchService.DeliveryService,
	couriers dispatchService.CourierService,
) *dispatchService.Dispatch {
	return dispatchService.New(deliveries, couriers)
}

func provideServiceStats(
	repository statsService.Repository,
	cache statsService.Cache,
	ttl StatsTTL,
	log logger.Logger,
) *statsService.Stats {
	return statsService.New(repository, cache, time.Duration(ttl), log)
}

func provideStatusHandlerFactory(deliveryService *deliveryService.Delivery) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(deliveryService)
}

func provideServicePayment(
	deliveryService paymentService.DeliveryService,
	handlerFactory paymentService.HandlerFactory,
) *paymentService.Service {
	return paymentService.New(deliveryService, handlerFactory)
}

func provideBoardMetricsTask(
	log logger.Logger,
	dispatchService board_metrics.Service,
	interval BoardMetricsInterval,
) *board_metrics.BoardMetrics {
	return board_metrics.NewBoardMetrics(log, dispatchService, time.Duration(interval))
}

func provideTaskList(
	boardMetricsTask *board_metrics.BoardMetrics,
) []background.Task {
	return []background.Task{
		boardMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
