package player

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/repository"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetOrCreatePlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error {
	args := m.Called(ctx, userID, guildID, update)
	return args.Error(0)
}

func (m *MockRepository) AddInventory(ctx context.Context, userID, guildID, item string, qty int) error {
	args := m.Called(ctx, userID, guildID, item, qty)
	return args.Error(0)
}

func (m *MockRepository) ListInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) ResetPlayer(ctx context.Context, userID, guildID string) error {
	args := m.Called(ctx, userID, guildID)
	return args.Error(0)
}

func (m *MockRepository) ResetGuild(ctx context.Context, guildID string) (int64, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) AverageLevel(ctx context.Context, guildID string) (float64, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PlayerTx), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
