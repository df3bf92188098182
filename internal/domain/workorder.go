package domain

import "time"

// WorkOrderStatus enumerates lifecycle states for work orders. The labels
// are wire-level, including the space in "In Progress".
type WorkOrderStatus string

const (
	StatusSubmitted  WorkOrderStatus = "Submitted"
	StatusInProgress WorkOrderStatus = "In Progress"
	StatusCompleted  WorkOrderStatus = "Completed"
)

// Valid reports whether the status is one of the three recognized labels.
// No transition graph exists: any valid status may overwrite any other,
// including moving Completed back to Submitted.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// WorkOrder is the aggregate for maintenance requests. SubmittedBy is
// immutable after creation; AssignedTo is carried for admin tooling but
// never set by any lifecycle operation.
type WorkOrder struct {
	ID           string
	SubmittedBy  string
	Title        string
	Description  string
	Building     string
	Room         string
	Status       WorkOrderStatus
	Availability []string
	AssignedTo   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkOrderWithSubmitter pairs a work order with its submitter's public
// identity for admin listings.
type WorkOrderWithSubmitter struct {
	WorkOrder
	SubmitterEmail string
}
