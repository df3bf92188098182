package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fiskfix/workorder-service/internal/events"
)

// NotificationService logs notifications for domain events. Facilities has
// no outbound channel yet, so notification delivery is a structured log.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventWorkOrderCreated, n.handleWorkOrderCreated)
	n.dispatcher.Subscribe(events.EventWorkOrderStatusChanged, n.handleWorkOrderStatusChanged)
}

func (n *NotificationService) handleWorkOrderCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("WorkOrderCreated",
		zap.String("work_order_id", event.WorkOrderID),
		zap.String("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleWorkOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("WorkOrderStatusChanged",
		zap.String("work_order_id", event.WorkOrderID),
		zap.String("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}
