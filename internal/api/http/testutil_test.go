package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fiskfix/workorder-service/internal/api/http/handlers"
	"github.com/fiskfix/workorder-service/internal/auth"
	"github.com/fiskfix/workorder-service/internal/config"
	"github.com/fiskfix/workorder-service/internal/domain"
	"github.com/fiskfix/workorder-service/internal/events"
	"github.com/fiskfix/workorder-service/internal/observability"
	"github.com/fiskfix/workorder-service/internal/repository"
	"github.com/fiskfix/workorder-service/internal/service"
)

// memUserRepo mirrors the Postgres repository over a map, including the
// pgx.ErrNoRows sentinel for missing rows.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

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

type memWorkOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders []*domain.WorkOrder
	users  *memUserRepo
}

var _ repository.WorkOrderRepository = (*memWorkOrderRepo)(nil)

func newMemWorkOrderRepo(users *memUserRepo) *memWorkOrderRepo {
	return &memWorkOrderRepo{users: users}
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

func (m *memWorkOrderRepo) ListAllWithSubmitter(ctx context.Context) ([]domain.WorkOrderWithSubmitter, error) {
	m.mu.Lock()
	orders := append([]*domain.WorkOrder{}, m.orders...)
	m.mu.Unlock()

	var result []domain.WorkOrderWithSubmitter
	for _, order := range orders {
		email := ""
		if user, err := m.users.GetByID(ctx, order.SubmittedBy); err == nil {
			email = user.Email
		}
		result = append(result, domain.WorkOrderWithSubmitter{
			WorkOrder:      *order,
			SubmitterEmail: email,
		})
	}
	return result, nil
}

// newTestApp wires the full HTTP stack against in-memory repositories.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:       "fiskfix-test",
			Version:    "test",
			CORSOrigin: "http://localhost:5173",
		},
		Auth: config.AuthConfig{
			JWTSecret:    "test-secret",
			TokenTTLDays: 30,
			BcryptCost:   bcrypt.MinCost,
		},
	}

	userRepo := newMemUserRepo()
	orderRepo := newMemWorkOrderRepo(userRepo)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, userRepo)
	orderService := service.NewWorkOrderService(orderRepo, dispatcher)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, cfg.App.CORSOrigin, cfg.App.RequestTimeout())
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		WorkOrders:     handlers.NewWorkOrdersHandler(orderService),
		AuthMiddleware: authMiddleware,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func registerUser(t *testing.T, app *fiber.App, email, password string, role domain.Role) (id, token string) {
	t.Helper()

	payload := map[string]any{"email": email, "password": password}
	if role != "" {
		payload["role"] = string(role)
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, body)
	return body["id"].(string), body["token"].(string)
}
