//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/tasks/delivery_stats"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/factory/confirmation_code"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/factory/delivery_notice"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/kafka"
	deliveryService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/delivery"
	inventoryService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/inventory"
	notificationService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/notification"
	userService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/user"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service).
// producer равен nil, если события не уходят в kafka (EVENTS_MODE=inline).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideIdempotencyStore,
		confirmation_code.New,
		delivery_notice.New,
		provideServiceDelivery,

		provideAuditSubscriber,
		provideNotifySubscriber,
		provideEventSubscribers,
		provideEventBus,

		provideStatsInterval,
		provideDeliveryStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceNotification), new(*notificationService.NotificationService)),
		wire.Bind(new(ServiceProduct), new(*inventoryService.Inventory)),

		wire.Bind(new(delivery_stats.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для воркера событий доставки (cmd/worker-delivery-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideDeliveryLogRepository,
		provideNotificationRepository,
		provideServiceAudit,
		provideServiceNotification,
		delivery_notice.New,

		provideAuditSubscriber,
		provideNotifySubscriber,
		provideWorkerSubscribers,
		provideEventBus,
		provideDeliveryEventHandler,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideUserRepository,
	provideProductRepository,
	providePointRepository,
	provideDeliveryRepository,
	provideDeliveryLogRepository,
	provideNotificationRepository,
)

var serviceSet = wire.NewSet(
	provideServiceUser,
	provideServicePoint,
	provideServiceInventory,
	provideServiceAudit,
	provideServiceNotification,
)
