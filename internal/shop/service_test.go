package shop

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/concurrency"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

const testGuild = "guild-1"

var testNow = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

func newTestService(repo *MockShopCache, gen ItemGenerator, now *time.Time) *service {
	return &service{
		repo:  repo,
		gen:   gen,
		front: expirable.NewLRU[string, string](16, nil, FrontCacheTTL),
		locks: concurrency.NewLockManager(),
		// first draw picks the item count: 0 -> MinItems
		rnd: &utils.SeqRand{Values: []int{0}},
		now: func() time.Time { return *now },
	}
}

func sampleProposals() []ai.ShopItemProposal {
	return []ai.ShopItemProposal{
		{Name: strPtr("Ember Flask"), Description: strPtr("Warm."), Cost: flex(45), Effects: []ai.EffectProposal{{Stat: strPtr("hp"), Amount: flex(3)}}},
		{Name: strPtr("Rusty Spear"), Description: strPtr("Pointy."), Cost: flex(70), Effects: []ai.EffectProposal{{Stat: strPtr("atk"), Amount: flex(2)}}},
		{Name: strPtr("Cork Shield"), Description: strPtr("Light."), Cost: flex(65), Effects: []ai.EffectProposal{{Stat: strPtr("def"), Amount: flex(1)}}},
		{Name: strPtr("Extra Item"), Cost: flex(10)},
	}
}

// =============================================================================
// GetShop Tests - Demonstrating 5-Case Testing Model
// =============================================================================

// CASE 1: BEST CASE - first request of the day generates, stores and caches
func TestGetShop_GeneratesOncePerDay(t *testing.T) {
	// ARRANGE
	repo := new(MockShopCache)
	gen := new(MockItemGenerator)
	now := testNow
	svc := newTestService(repo, gen, &now)

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, nil).Once()
	gen.On("ShopItems", mock.Anything, MinItems, 4).Return(sampleProposals(), nil).Once()
	repo.On("PutShop", mock.Anything, testGuild, "20240310", mock.AnythingOfType("string")).Return(nil).Once()

	// ACT
	first, err := svc.GetShop(context.Background(), testGuild, 4)
	require.NoError(t, err)
	second, err := svc.GetShop(context.Background(), testGuild, 9)
	require.NoError(t, err)

	// ASSERT
	require.Len(t, first, MinItems, "proposals beyond the target count are dropped")
	assert.Equal(t, "Ember Flask", first[0].Name)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))

	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
}

// CASE 2: BOUNDARY - a stored empty list is returned verbatim
func TestGetShop_StoredEmptyListIsReturnedVerbatim(t *testing.T) {
	repo := new(MockShopCache)
	gen := new(MockItemGenerator)
	now := testNow
	svc := newTestService(repo, gen, &now)

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("[]", true, nil).Once()

	items, err := svc.GetShop(context.Background(), testGuild, 1)

	require.NoError(t, err)
	assert.Empty(t, items)
	gen.AssertNotCalled(t, "ShopItems", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "PutShop", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 3: EDGE - generator failures fall back and the fallback is cached
func TestGetShop_FallbackIsCached(t *testing.T) {
	tests := []struct {
		name  string
		setup func(gen *MockItemGenerator)
	}{
		{
			name: "generator error",
			setup: func(gen *MockItemGenerator) {
				gen.On("ShopItems", mock.Anything, MinItems, 2).Return(nil, domain.ErrGeneratorUnavailable)
			},
		},
		{
			name: "generator returns no items",
			setup: func(gen *MockItemGenerator) {
				gen.On("ShopItems", mock.Anything, MinItems, 2).Return([]ai.ShopItemProposal{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockShopCache)
			gen := new(MockItemGenerator)
			tt.setup(gen)
			now := testNow
			svc := newTestService(repo, gen, &now)

			want, _ := json.Marshal(Fallback())
			repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, nil).Once()
			repo.On("PutShop", mock.Anything, testGuild, "20240310", string(want)).Return(nil).Once()

			items, err := svc.GetShop(context.Background(), testGuild, 2)

			require.NoError(t, err)
			assert.Equal(t, Fallback(), items)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetShop_NilGeneratorUsesFallback(t *testing.T) {
	repo := new(MockShopCache)
	now := testNow
	svc := newTestService(repo, nil, &now)

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, nil)
	repo.On("PutShop", mock.Anything, testGuild, "20240310", mock.Anything).Return(nil)

	items, err := svc.GetShop(context.Background(), testGuild, 1)

	require.NoError(t, err)
	assert.Equal(t, Fallback(), items)
}

func TestGetShop_StoreHitSkipsGenerator(t *testing.T) {
	repo := new(MockShopCache)
	gen := new(MockItemGenerator)
	now := testNow
	svc := newTestService(repo, gen, &now)

	stored, _ := json.Marshal(Fallback()[:1])
	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return(string(stored), true, nil).Once()

	items, err := svc.GetShop(context.Background(), testGuild, 1)
	require.NoError(t, err)
	_, err = svc.GetShop(context.Background(), testGuild, 1)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Small Potion", items[0].Name)
	repo.AssertExpectations(t)
	gen.AssertNotCalled(t, "ShopItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetShop_CorruptStoredEntryIsRegenerated(t *testing.T) {
	repo := new(MockShopCache)
	gen := new(MockItemGenerator)
	now := testNow
	svc := newTestService(repo, gen, &now)

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("{not json", true, nil)
	gen.On("ShopItems", mock.Anything, MinItems, 1).Return(sampleProposals(), nil)
	repo.On("PutShop", mock.Anything, testGuild, "20240310", mock.Anything).Return(nil)

	items, err := svc.GetShop(context.Background(), testGuild, 1)

	require.NoError(t, err)
	assert.Len(t, items, MinItems)
	gen.AssertExpectations(t)
}

func TestGetShop_NewDayUsesNewKey(t *testing.T) {
	repo := new(MockShopCache)
	now := testNow
	svc := newTestService(repo, nil, &now)

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("[]", true, nil).Once()
	repo.On("GetShop", mock.Anything, testGuild, "20240311").Return("[]", true, nil).Once()

	_, err := svc.GetShop(context.Background(), testGuild, 1)
	require.NoError(t, err)

	now = testNow.Add(24 * time.Hour)
	_, err = svc.GetShop(context.Background(), testGuild, 1)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

// CASE 4: INVALID - storage errors propagate
func TestGetShop_StorageErrors(t *testing.T) {
	t.Run("read fails", func(t *testing.T) {
		repo := new(MockShopCache)
		now := testNow
		svc := newTestService(repo, nil, &now)
		dbErr := errors.New("connection refused")
		repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, dbErr)

		_, err := svc.GetShop(context.Background(), testGuild, 1)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("write fails", func(t *testing.T) {
		repo := new(MockShopCache)
		now := testNow
		svc := newTestService(repo, nil, &now)
		dbErr := errors.New("disk full")
		repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, nil)
		repo.On("PutShop", mock.Anything, testGuild, "20240310", mock.Anything).Return(dbErr)

		_, err := svc.GetShop(context.Background(), testGuild, 1)

		assert.ErrorIs(t, err, dbErr)
	})
}

// CASE 5: HOSTILE - concurrent first requests generate exactly once
func TestGetShop_ConcurrentFirstRequests(t *testing.T) {
	repo := new(MockShopCache)
	gen := new(MockItemGenerator)
	now := testNow
	svc := newTestService(repo, gen, &now)
	svc.rnd = utils.DefaultRand

	repo.On("GetShop", mock.Anything, testGuild, "20240310").Return("", false, nil).Once()
	gen.On("ShopItems", mock.Anything, mock.Anything, 3).Return(sampleProposals(), nil).Once()
	repo.On("PutShop", mock.Anything, testGuild, "20240310", mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	results := make([]string, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items, err := svc.GetShop(context.Background(), testGuild, 3)
			assert.NoError(t, err)
			b, _ := json.Marshal(items)
			results[i] = string(b)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	gen.AssertNumberOfCalls(t, "ShopItems", 1)
	repo.AssertNumberOfCalls(t, "PutShop", 1)
}

func TestPrune(t *testing.T) {
	repo := new(MockShopCache)
	now := testNow
	svc := newTestService(repo, nil, &now)

	repo.On("PruneShops", mock.Anything, "20240303").Return(int64(4), nil)

	n, err := svc.Prune(context.Background(), testNow, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
