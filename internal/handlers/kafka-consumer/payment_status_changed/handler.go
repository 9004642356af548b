package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	deliveryservice "dispatch/internal/service/delivery"
	paymentservice "dispatch/internal/service/payment"
	"dispatch/pkg/logger"
)

// changedEvent is the payment provider's webhook payload relayed into
// the payment.status.changed topic.
type changedEvent struct {
	DeliveryID    string `json:"delivery_id"`
	PaymentStatus string `json:"payment_status"`
}

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
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
				// Messages() закрыт — выходим
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("payment_status", event.PaymentStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	status := entities.PaymentStatusType(event.PaymentStatus)

	record, err := h.paymentService.ProcessPaymentStatusChange(ctx, event.DeliveryID, status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrMissingRequiredFields),
			errors.Is(err, paymentservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler malformed event")

		case errors.Is(err, deliveryservice.ErrDeliveryNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler unknown delivery")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("delivery", record.ID),
		logger.NewField("event_status", event.PaymentStatus),
		logger.NewField("current_status", record.PaymentStatus.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
