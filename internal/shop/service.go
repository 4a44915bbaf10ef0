package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/concurrency"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/logger"
	"github.com/RobNel12/newbot-ai/internal/metrics"
	"github.com/RobNel12/newbot-ai/internal/repository"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

// ItemGenerator proposes shop items. *ai.Generator satisfies it.
type ItemGenerator interface {
	ShopItems(ctx context.Context, count, avgLevel int) ([]ai.ShopItemProposal, error)
}

// Service defines the interface for the daily shop
type Service interface {
	// GetShop returns today's items for the guild, generating them on the first
	// request of the UTC day. avgLevel is only used as a generation hint.
	GetShop(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, error)
	// Prune deletes stored shops older than retentionDays before now
	Prune(ctx context.Context, now time.Time, retentionDays int) (int64, error)
}

type service struct {
	repo  repository.ShopCache
	gen   ItemGenerator
	front *expirable.LRU[string, string]
	locks *concurrency.LockManager
	rnd   utils.Rand
	now   func() time.Time
}

// NewService creates a new shop service. gen may be nil, in which case every
// day gets the fallback list.
func NewService(repo repository.ShopCache, gen ItemGenerator, cacheSize int) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultFrontCacheSize
	}
	return &service{
		repo:  repo,
		gen:   gen,
		front: expirable.NewLRU[string, string](cacheSize, nil, FrontCacheTTL),
		locks: concurrency.NewLockManager(),
		rnd:   utils.DefaultRand,
		now:   time.Now,
	}
}

func (s *service) GetShop(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, error) {
	log := logger.FromContext(ctx)
	day := domain.DayKey(s.now())
	key := concurrency.Key(guildID, day)

	if items, ok := s.cached(key); ok {
		metrics.ShopLookups.WithLabelValues(metrics.SourceCache).Inc()
		return items, nil
	}

	unlock := s.locks.Lock(concurrency.Key("shop", guildID))
	defer unlock()

	// Filled while we waited
	if items, ok := s.cached(key); ok {
		metrics.ShopLookups.WithLabelValues(metrics.SourceCache).Inc()
		return items, nil
	}

	raw, found, err := s.repo.GetShop(ctx, guildID, day)
	if err != nil {
		log.Error("Failed to read shop cache", "error", err, "guild_id", guildID)
		return nil, fmt.Errorf("failed to read shop cache: %w", err)
	}
	if found {
		items, err := decodeItems(raw)
		if err == nil {
			log.Debug(LogMsgCacheHit, "guild_id", guildID, "day", day)
			s.front.Add(key, raw)
			metrics.ShopLookups.WithLabelValues(metrics.SourceStore).Inc()
			return items, nil
		}
		log.Warn(LogMsgCorruptCacheEntry, "guild_id", guildID, "day", day, "error", err)
	}

	items, source := s.generate(ctx, guildID, avgLevel)

	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shop: %w", err)
	}
	if err := s.repo.PutShop(ctx, guildID, day, string(encoded)); err != nil {
		log.Error("Failed to store shop", "error", err, "guild_id", guildID)
		return nil, fmt.Errorf("failed to store shop: %w", err)
	}
	s.front.Add(key, string(encoded))
	metrics.ShopLookups.WithLabelValues(source).Inc()

	return items, nil
}

func (s *service) Prune(ctx context.Context, now time.Time, retentionDays int) (int64, error) {
	cutoff := domain.DayKey(now.AddDate(0, 0, -retentionDays))
	n, err := s.repo.PruneShops(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune shops before %s: %w", cutoff, err)
	}
	return n, nil
}

// generate asks for a fresh list and returns it with its metrics source label
func (s *service) generate(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, string) {
	log := logger.FromContext(ctx)
	count := utils.RandomInt(s.rnd, MinItems, MaxItems)
	log.Info(LogMsgGeneratingShop, "guild_id", guildID, "count", count, "avg_level", avgLevel)

	if s.gen == nil {
		return Fallback(), metrics.SourceFallback
	}

	proposals, err := s.gen.ShopItems(ctx, count, avgLevel)
	if err != nil {
		log.Warn(LogMsgGeneratorFailed, "error", err, "guild_id", guildID)
		return Fallback(), metrics.SourceFallback
	}

	if len(proposals) > count {
		proposals = proposals[:count]
	}
	items := make([]domain.ShopItem, 0, len(proposals))
	for _, p := range proposals {
		items = append(items, NormalizeItem(p, s.rnd))
	}
	if len(items) == 0 {
		log.Warn(LogMsgNoUsableItems, "guild_id", guildID)
		return Fallback(), metrics.SourceFallback
	}
	return items, metrics.SourceGenerator
}

func (s *service) cached(key string) ([]domain.ShopItem, bool) {
	raw, ok := s.front.Get(key)
	if !ok {
		return nil, false
	}
	items, err := decodeItems(raw)
	if err != nil {
		s.front.Remove(key)
		return nil, false
	}
	return items, true
}

func decodeItems(raw string) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
