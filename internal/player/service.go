package player

import (
	"context"
	"fmt"
	"math"

	"github.com/RobNel12/newbot-ai/internal/concurrency"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/logger"
	"github.com/RobNel12/newbot-ai/internal/repository"
)

// Service defines the interface for profile, inventory and reset operations
type Service interface {
	GetProfile(ctx context.Context, userID, guildID string) (*domain.Player, error)
	GetInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error)
	// AverageLevel is the rounded mean level of the guild's players, at least 1
	AverageLevel(ctx context.Context, guildID string) (int, error)
	Reset(ctx context.Context, userID, guildID string) (*domain.Player, error)
	ResetAll(ctx context.Context, guildID string) (int64, error)
}

type service struct {
	repo  repository.Player
	locks *concurrency.LockManager
}

// NewService creates a new player service. locks must be the manager the
// activity resolver uses so resets serialize with activities.
func NewService(repo repository.Player, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{repo: repo, locks: locks}
}

// LockKey names the in-process lock guarding one player's row
func LockKey(userID, guildID string) string {
	return concurrency.Key("player", guildID, userID)
}

func (s *service) GetProfile(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	p, err := s.repo.GetOrCreatePlayer(ctx, userID, guildID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to load player", "error", err, "user_id", userID, "guild_id", guildID)
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return p, nil
}

func (s *service) GetInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error) {
	items, err := s.repo.ListInventory(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	if items == nil {
		items = []domain.InventoryEntry{}
	}
	return items, nil
}

func (s *service) AverageLevel(ctx context.Context, guildID string) (int, error) {
	avg, err := s.repo.AverageLevel(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute average level: %w", err)
	}
	return max(domain.DefaultLevel, int(math.Round(avg))), nil
}

func (s *service) Reset(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(LockKey(userID, guildID))
	defer unlock()

	if err := s.repo.ResetPlayer(ctx, userID, guildID); err != nil {
		log.Error("Failed to reset player", "error", err, "user_id", userID, "guild_id", guildID)
		return nil, fmt.Errorf("failed to reset player: %w", err)
	}
	log.Info("Player reset", "user_id", userID, "guild_id", guildID)

	return domain.NewPlayer(userID, guildID), nil
}

// ResetAll runs as a single storage statement. Row locks held by in-flight
// activities serialize it with them.
func (s *service) ResetAll(ctx context.Context, guildID string) (int64, error) {
	n, err := s.repo.ResetGuild(ctx, guildID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to reset guild", "error", err, "guild_id", guildID)
		return 0, fmt.Errorf("failed to reset guild: %w", err)
	}
	logger.FromContext(ctx).Info("Guild reset", "guild_id", guildID, "players", n)
	return n, nil
}
