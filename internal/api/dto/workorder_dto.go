package dto

import (
	"time"

	"github.com/fiskfix/workorder-service/internal/domain"
)

// CreateWorkOrderRequest payload. Availability slots are free-form labels
// from the request form.
type CreateWorkOrderRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Building     string   `json:"building"`
	Room         string   `json:"room"`
	Availability []string `json:"availability"`
}

// UpdateWorkOrderRequest payload for the admin status update.
type UpdateWorkOrderRequest struct {
	Status domain.WorkOrderStatus `json:"status"`
}

// WorkOrderResponse is the full record as seen by the submitter.
type WorkOrderResponse struct {
	ID           string                 `json:"id"`
	SubmittedBy  string                 `json:"submittedBy"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Building     string                 `json:"building"`
	Room         string                 `json:"room"`
	Status       domain.WorkOrderStatus `json:"status"`
	Availability []string               `json:"availability"`
	AssignedTo   *string                `json:"assignedTo"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// SubmitterResponse is the expanded submitter reference on admin listings.
type SubmitterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AdminWorkOrderResponse is the admin listing shape with submittedBy
// expanded to the submitter's public identity.
type AdminWorkOrderResponse struct {
	ID           string                 `json:"id"`
	SubmittedBy  SubmitterResponse      `json:"submittedBy"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Building     string                 `json:"building"`
	Room         string                 `json:"room"`
	Status       domain.WorkOrderStatus `json:"status"`
	Availability []string               `json:"availability"`
	AssignedTo   *string                `json:"assignedTo"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}
