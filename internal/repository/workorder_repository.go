package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiskfix/workorder-service/internal/domain"
)

// WorkOrderRepository encapsulates work-order persistence.
type WorkOrderRepository interface {
	Create(ctx context.Context, order *domain.WorkOrder) error
	Update(ctx context.Context, order *domain.WorkOrder) error
	GetByID(ctx context.Context, id string) (*domain.WorkOrder, error)
	ListBySubmitter(ctx context.Context, userID string) ([]domain.WorkOrder, error)
	ListAllWithSubmitter(ctx context.Context) ([]domain.WorkOrderWithSubmitter, error)
}

type workOrderRepository struct {
	pool *pgxpool.Pool
}

// NewWorkOrderRepository instantiates repository.
func NewWorkOrderRepository(pool *pgxpool.Pool) WorkOrderRepository {
	return &workOrderRepository{pool: pool}
}

func (r *workOrderRepository) Create(ctx context.Context, order *domain.WorkOrder) error {
	const query = `
        INSERT INTO work_orders (submitted_by, title, description, building, room, status, availability, assigned_to)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		order.SubmittedBy,
		order.Title,
		order.Description,
		order.Building,
		order.Room,
		order.Status,
		order.Availability,
		order.AssignedTo,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *workOrderRepository) Update(ctx context.Context, order *domain.WorkOrder) error {
	const query = `
        UPDATE work_orders SET title=$1, description=$2, building=$3, room=$4,
            status=$5, availability=$6, assigned_to=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		order.Title,
		order.Description,
		order.Building,
		order.Room,
		order.Status,
		order.Availability,
		order.AssignedTo,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (*domain.WorkOrder, error) {
	const query = `
        SELECT id, submitted_by, title, description, building, room, status, availability, assigned_to, created_at, updated_at
        FROM work_orders WHERE id=$1`

	var order domain.WorkOrder
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.SubmittedBy,
		&order.Title,
		&order.Description,
		&order.Building,
		&order.Room,
		&order.Status,
		&order.Availability,
		&order.AssignedTo,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *workOrderRepository) ListBySubmitter(ctx context.Context, userID string) ([]domain.WorkOrder, error) {
	const query = `
        SELECT id, submitted_by, title, description, building, room, status, availability, assigned_to, created_at, updated_at
        FROM work_orders WHERE submitted_by=$1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkOrders(rows)
}

func (r *workOrderRepository) ListAllWithSubmitter(ctx context.Context) ([]domain.WorkOrderWithSubmitter, error) {
	const query = `
        SELECT w.id, w.submitted_by, w.title, w.description, w.building, w.room,
               w.status, w.availability, w.assigned_to, w.created_at, w.updated_at, u.email
        FROM work_orders w
        JOIN users u ON u.id = w.submitted_by`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WorkOrderWithSubmitter
	for rows.Next() {
		var item domain.WorkOrderWithSubmitter
		if err := rows.Scan(
			&item.ID,
			&item.SubmittedBy,
			&item.Title,
			&item.Description,
			&item.Building,
			&item.Room,
			&item.Status,
			&item.Availability,
			&item.AssignedTo,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.SubmitterEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func scanWorkOrders(rows pgx.Rows) ([]domain.WorkOrder, error) {
	var result []domain.WorkOrder
	for rows.Next() {
		var order domain.WorkOrder
		if err := rows.Scan(
			&order.ID,
			&order.SubmittedBy,
			&order.Title,
			&order.Description,
			&order.Building,
			&order.Room,
			&order.Status,
			&order.Availability,
			&order.AssignedTo,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
