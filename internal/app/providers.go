package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/events/delivery_audit"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/events/delivery_notify"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/events/kafka_relay"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/kafka-consumer/delivery_event"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/deliveries_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_assign_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_proof_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_status_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notification_delete"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notification_read_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notifications_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/order_delete"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/order_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/product_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/product_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_put"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/users_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/tasks/delivery_stats"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/eventbus"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/factory/confirmation_code"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/factory/delivery_notice"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/kafka"
	deliveryRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/delivery"
	deliveryLogRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/deliverylog"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/idempotency"
	notificationRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/notification"
	pointRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/point"
	productRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/product"
	userRepo "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository/user"
	auditService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/audit"
	deliveryService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/delivery"
	inventoryService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/inventory"
	notificationService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/notification"
	pointService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/point"
	userService "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/user"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/background"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/querier"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/tx"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceDelivery     ServiceDelivery
	ServiceUser         ServiceUser
	ServiceNotification ServiceNotification
	ServiceProduct      ServiceProduct
	BackgroundWorkers   *background.Worker
}

type ServiceDelivery interface {
	order_post.Service
	order_delete.Service
	deliveries_get.Service
	delivery_get.Service
	delivery_assign_post.Service
	delivery_status_post.Service
	delivery_proof_post.Service
}

type ServiceUser interface {
	user_post.Service
	user_put.Service
	user_get.Service
	users_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
	notification_delete.Service
}

type ServiceProduct interface {
	product_post.Service
	product_get.Service
}

type KafkaWorkerApp struct {
	DeliveryEventHandler *delivery_event.Handler
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func providePointRepository(querier *querier.Querier) *pointRepo.Repository {
	return pointRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideDeliveryLogRepository(querier *querier.Querier) *deliveryLogRepo.Repository {
	return deliveryLogRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideIdempotencyStore(client *goredis.Client, cfg *config.Config) *idempotency.Store {
	return idempotency.New(client, cfg.Redis.IdempotencyTTL)
}

func provideServiceUser(repository *userRepo.Repository) *userService.User {
	return userService.New(repository)
}

func provideServicePoint(repository *pointRepo.Repository) *pointService.Point {
	return pointService.New(repository)
}

func provideServiceInventory(log logger.Logger, repository *productRepo.Repository, txManager *tx.Manager) *inventoryService.Inventory {
	return inventoryService.New(log, repository, txManager)
}

func provideServiceAudit(repository *deliveryLogRepo.Repository) *auditService.Audit {
	return auditService.New(repository)
}

func provideServiceNotification(repository *notificationRepo.Repository) *notificationService.NotificationService {
	return notificationService.New(repository)
}

func provideServiceDelivery(
	log logger.Logger,
	repository *deliveryRepo.Repository,
	points *pointService.Point,
	users *userService.User,
	inventory *inventoryService.Inventory,
	audit *auditService.Audit,
	events *eventbus.Bus,
	codes *confirmation_code.CodeFactory,
	idempotencyStore *idempotency.Store,
	txManager *tx.Manager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		points,
		users,
		inventory,
		audit,
		events,
		codes,
		idempotencyStore,
		txManager,
	)
}

func provideAuditSubscriber(audit *auditService.Audit) *delivery_audit.Handler {
	return delivery_audit.New(audit)
}

func provideNotifySubscriber(notifier *notificationService.NotificationService, notices *delivery_notice.NoticeFactory) *delivery_notify.Handler {
	return delivery_notify.New(notifier, notices)
}

// provideEventSubscribers: в режиме kafka журнал и уведомления пишет воркер,
// сервис только пересылает события в топик.
func provideEventSubscribers(
	cfg *config.Config,
	auditSubscriber *delivery_audit.Handler,
	notifySubscriber *delivery_notify.Handler,
	producer *kafka.Producer,
) []eventbus.Subscriber {
	if cfg.Events.Mode == config.EventsModeKafka && producer != nil {
		return []eventbus.Subscriber{
			kafka_relay.New(producer),
		}
	}
	return []eventbus.Subscriber{
		auditSubscriber,
		notifySubscriber,
	}
}

func provideWorkerSubscribers(
	auditSubscriber *delivery_audit.Handler,
	notifySubscriber *delivery_notify.Handler,
) []eventbus.Subscriber {
	return []eventbus.Subscriber{
		auditSubscriber,
		notifySubscriber,
	}
}

func provideEventBus(log logger.Logger, cfg *config.Config, subscribers []eventbus.Subscriber) *eventbus.Bus {
	return eventbus.New(log, cfg.Events.DispatchTimeout, subscribers...)
}

func provideDeliveryEventHandler(log logger.Logger, bus *eventbus.Bus, cfg *config.Config) *delivery_event.Handler {
	return delivery_event.New(log, bus, cfg.Kafka.Handlers.DeliveryEvent.ProcessTimeout)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.DeliveryStatsInterval)
}

func provideDeliveryStatsTask(
	log logger.Logger,
	deliveryService delivery_stats.Service,
	interval StatsInterval,
) *delivery_stats.DeliveryStats {
	return delivery_stats.NewDeliveryStats(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	deliveryStatsTask *delivery_stats.DeliveryStats,
) []background.Task {
	return []background.Task{
		deliveryStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
