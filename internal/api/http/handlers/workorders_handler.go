package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fiskfix/workorder-service/internal/api/dto"
	"github.com/fiskfix/workorder-service/internal/auth"
	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/service"
	apperrors "github.com/fiskfix/workorder-service/pkg/util"
)

// WorkOrdersHandler manages work-order endpoints.
type WorkOrdersHandler struct {
	orders *service.WorkOrderService
}

// NewWorkOrdersHandler constructs handler.
func NewWorkOrdersHandler(orderService *service.WorkOrderService) *WorkOrdersHandler {
	return &WorkOrdersHandler{orders: orderService}
}

// Create POST /api/workorders.
func (h *WorkOrdersHandler) Create(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("error creating work order")
	}

	input := service.WorkOrderCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Building:     req.Building,
		Room:         req.Room,
		Availability: req.Availability,
	}
	order, err := h.orders.Create(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(workOrderResponse(order))
}

// ListMine GET /api/workorders/mine.
func (h *WorkOrdersHandler) ListMine(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	orders, err := h.orders.ListMine(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.WorkOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, workOrderResponse(&orders[i]))
	}
	return c.JSON(items)
}

// ListAll GET /api/workorders/all. Elevated roles only.
func (h *WorkOrdersHandler) ListAll(c *fiber.Ctx) error {
	if _, err := callerPrincipal(c); err != nil {
		return err
	}
	orders, err := h.orders.ListAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AdminWorkOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, adminWorkOrderResponse(&orders[i]))
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/workorders/:id. Elevated roles only.
func (h *WorkOrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	order, err := h.orders.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(workOrderResponse(order))
}

func callerPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("not authorized, no token")
	}
	return principal, nil
}

func workOrderResponse(order *domain.WorkOrder) dto.WorkOrderResponse {
	return dto.WorkOrderResponse{
		ID:           order.ID,
		SubmittedBy:  order.SubmittedBy,
		Title:        order.Title,
		Description:  order.Description,
		Building:     order.Building,
		Room:         order.Room,
		Status:       order.Status,
		Availability: order.Availability,
		AssignedTo:   order.AssignedTo,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

func adminWorkOrderResponse(item *domain.WorkOrderWithSubmitter) dto.AdminWorkOrderResponse {
	return dto.AdminWorkOrderResponse{
		ID: item.ID,
		SubmittedBy: dto.SubmitterResponse{
			ID:    item.SubmittedBy,
			Email: item.SubmitterEmail,
		},
		Title:        item.Title,
		Description:  item.Description,
		Building:     item.Building,
		Room:         item.Room,
		Status:       item.Status,
		Availability: item.Availability,
		AssignedTo:   item.AssignedTo,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
