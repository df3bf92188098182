package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/events"
)

// memUserRepo is an in-memory UserRepository. Missing rows are reported
// with pgx.ErrNoRows, matching the real repositories.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	user.ID = fmt.Sprintf("user-%d", m.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	m.users[user.ID] = &stored
	return nil
}

func (m *memUserRepo) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			delete(m.users, id)
		}
	}
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// memWorkOrderRepo is an in-memory WorkOrderRepository preserving insertion
// order. Submitter emails for the admin listing come from userEmails.
type memWorkOrderRepo struct {
	mu         sync.Mutex
	seq        int
	orders     []*domain.WorkOrder
	userEmails map[string]string
}

func newMemWorkOrderRepo() *memWorkOrderRepo {
	return &memWorkOrderRepo{userEmails: make(map[string]string)}
}

func (m *memWorkOrderRepo) Create(_ context.Context, order *domain.WorkOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	order.ID = fmt.Sprintf("wo-%d", m.seq)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	stored := *order
	m.orders = append(m.orders, &stored)
	return nil
}

func (m *memWorkOrderRepo) Update(_ context.Context, order *domain.WorkOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.orders {
		if existing.ID == order.ID {
			stored := *order
			stored.UpdatedAt = time.Now()
			m.orders[i] = &stored
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memWorkOrderRepo) GetByID(_ context.Context, id string) (*domain.WorkOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.ID == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memWorkOrderRepo) ListBySubmitter(_ context.Context, userID string) ([]domain.WorkOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.WorkOrder
	for _, order := range m.orders {
		if order.SubmittedBy == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *memWorkOrderRepo) ListAllWithSubmitter(_ context.Context) ([]domain.WorkOrderWithSubmitter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.WorkOrderWithSubmitter
	for _, order := range m.orders {
		result = append(result, domain.WorkOrderWithSubmitter{
			WorkOrder:      *order,
			SubmitterEmail: m.userEmails[order.SubmittedBy],
		})
	}
	return result, nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.published...)
}
