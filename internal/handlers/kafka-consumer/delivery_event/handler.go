package delivery_event

import (
	"context"
	"time"

	"github.com/IBM/sarama"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/kafka"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

// Handler применяет побочные эффекты событий доставки, вынесенных в kafka.
type Handler struct {
	dispatcher               Dispatcher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatcher Dispatcher, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery.events"),
	)

	return &Handler{
		dispatcher:               dispatcher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если сессия закрылась во время обработки и сообщение нужно перечитать.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := kafka.DecodeDeliveryEvent(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery_id", event.DeliveryID),
		logger.NewField("event", event.Type.String()),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.events processing")

	// ошибки подписчиков логирует и считает dispatcher
	h.dispatcher.Publish(ctx, event)

	if sess.Context().Err() != nil {
		msgLog.Warn("delivery.events session closed during processing, message will be reprocessed")
		return true
	}

	msgLog.Info("delivery.events: processed")

	sess.MarkMessage(message, "")
	return false
}
