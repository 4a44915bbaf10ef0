package activity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RobNel12/newbot-ai/internal/ai"
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

// MockTx implements repository.PlayerTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetOrCreatePlayerForUpdate(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) UpdatePlayer(ctx context.Context, userID, guildID string, update domain.PlayerUpdate) error {
	args := m.Called(ctx, userID, guildID, update)
	return args.Error(0)
}

func (m *MockTx) AddInventory(ctx context.Context, userID, guildID, item string, qty int) error {
	args := m.Called(ctx, userID, guildID, item, qty)
	return args.Error(0)
}

// MockShop implements ShopProvider for testing
type MockShop struct {
	mock.Mock
}

func (m *MockShop) GetShop(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, error) {
	args := m.Called(ctx, guildID, avgLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

// MockGenerator implements ContentGenerator for testing
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Encounter(ctx context.Context, p domain.Player) (*ai.EncounterProposal, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.EncounterProposal), args.Error(1)
}

func (m *MockGenerator) Line(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}
