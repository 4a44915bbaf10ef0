package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// MockPlayerService implements player.Service for testing
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) GetProfile(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockPlayerService) AverageLevel(ctx context.Context, guildID string) (int, error) {
	args := m.Called(ctx, guildID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerService) Reset(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) ResetAll(ctx context.Context, guildID string) (int64, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityService implements activity.Service for testing
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Perform(ctx context.Context, userID, guildID, activity string) (*domain.ActivityResult, error) {
	args := m.Called(ctx, userID, guildID, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityResult), args.Error(1)
}

func (m *MockActivityService) Purchase(ctx context.Context, userID, guildID string, slot int) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, guildID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

// MockShopService implements shop.Service for testing
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) GetShop(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, error) {
	args := m.Called(ctx, guildID, avgLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockShopService) Prune(ctx context.Context, now time.Time, retentionDays int) (int64, error) {
	args := m.Called(ctx, now, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockChatter implements Chatter for testing
type MockChatter struct {
	mock.Mock
}

func (m *MockChatter) Chat(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockPinger implements Pinger for testing
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
