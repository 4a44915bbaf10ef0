package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RobNel12/newbot-ai/internal/ai"
)

// MockShopCache implements repository.ShopCache for testing
type MockShopCache struct {
	mock.Mock
}

func (m *MockShopCache) GetShop(ctx context.Context, guildID, dayKey string) (string, bool, error) {
	args := m.Called(ctx, guildID, dayKey)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockShopCache) PutShop(ctx context.Context, guildID, dayKey, itemsJSON string) error {
	args := m.Called(ctx, guildID, dayKey, itemsJSON)
	return args.Error(0)
}

func (m *MockShopCache) PruneShops(ctx context.Context, beforeDayKey string) (int64, error) {
	args := m.Called(ctx, beforeDayKey)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemGenerator implements ItemGenerator for testing
type MockItemGenerator struct {
	mock.Mock
}

func (m *MockItemGenerator) ShopItems(ctx context.Context, count, avgLevel int) ([]ai.ShopItemProposal, error) {
	args := m.Called(ctx, count, avgLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ai.ShopItemProposal), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func flex(v int) ai.FlexInt {
	return ai.FlexInt{Value: v, Valid: true}
}
