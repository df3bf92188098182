package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/events"
	"github.com/fiskfix/workorder-service/internal/repository"
	apperrors "github.com/fiskfix/workorder-service/pkg/util"
)

// WorkOrderService coordinates maintenance-request workflows.
type WorkOrderService struct {
	orders     repository.WorkOrderRepository
	dispatcher events.Dispatcher
}

// WorkOrderCreateInput describes the creation payload.
type WorkOrderCreateInput struct {
	Title        string
	Description  string
	Building     string
	Room         string
	Availability []string
}

// NewWorkOrderService constructs the service.
func NewWorkOrderService(orders repository.WorkOrderRepository, dispatcher events.Dispatcher) *WorkOrderService {
	return &WorkOrderService{orders: orders, dispatcher: dispatcher}
}

// Create files a new work order owned by the caller with status Submitted.
func (s *WorkOrderService) Create(ctx context.Context, userID string, input WorkOrderCreateInput) (*domain.WorkOrder, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	building := strings.TrimSpace(input.Building)
	room := strings.TrimSpace(input.Room)
	if title == "" || description == "" || building == "" || room == "" {
		return nil, apperrors.NewValidationError("error creating work order")
	}

	availability := input.Availability
	if availability == nil {
		availability = []string{}
	}

	order := &domain.WorkOrder{
		SubmittedBy:  userID,
		Title:        title,
		Description:  description,
		Building:     building,
		Room:         room,
		Status:       domain.StatusSubmitted,
		Availability: availability,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventWorkOrderCreated,
		WorkOrderID: order.ID,
		ActorID:     userID,
		Payload: events.WorkOrderCreatedPayload{
			Title:    order.Title,
			Building: order.Building,
			Room:     order.Room,
		},
	})
	return order, nil
}

// ListMine returns the caller's work orders in storage order.
func (s *WorkOrderService) ListMine(ctx context.Context, userID string) ([]domain.WorkOrder, error) {
	return s.orders.ListBySubmitter(ctx, userID)
}

// ListAll returns every work order with the submitter's email attached.
// Callers are expected to be gated by the elevated-role middleware.
func (s *WorkOrderService) ListAll(ctx context.Context) ([]domain.WorkOrderWithSubmitter, error) {
	return s.orders.ListAllWithSubmitter(ctx)
}

// UpdateStatus overwrites the stored status. The value must be one of the
// three recognized labels, but no transition graph is enforced: Completed
// may legally move back to Submitted.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, actorID, orderID string, newStatus domain.WorkOrderStatus) (*domain.WorkOrder, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("work order")
		}
		return nil, err
	}

	if newStatus == "" {
		return order, nil
	}
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("invalid status")
	}

	oldStatus := order.Status
	order.Status = newStatus
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventWorkOrderStatusChanged,
		WorkOrderID: order.ID,
		ActorID:     actorID,
		Payload: events.WorkOrderStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return order, nil
}

func (s *WorkOrderService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
