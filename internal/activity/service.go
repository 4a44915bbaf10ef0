package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/concurrency"
	"github.com/RobNel12/newbot-ai/internal/cooldown"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/leveling"
	"github.com/RobNel12/newbot-ai/internal/logger"
	"github.com/RobNel12/newbot-ai/internal/metrics"
	"github.com/RobNel12/newbot-ai/internal/player"
	"github.com/RobNel12/newbot-ai/internal/repository"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

// Service defines the interface for resolving activities and purchases
type Service interface {
	// Perform runs the named activity for the player
	Perform(ctx context.Context, userID, guildID, activity string) (*domain.ActivityResult, error)
	// Purchase buys the item in the 1-based slot of today's shop
	Purchase(ctx context.Context, userID, guildID string, slot int) (*domain.PurchaseResult, error)
}

// ShopProvider returns today's shop. *shop.Service satisfies it.
type ShopProvider interface {
	GetShop(ctx context.Context, guildID string, avgLevel int) ([]domain.ShopItem, error)
}

// ContentGenerator supplies encounters and flavor lines. *ai.Generator satisfies it.
type ContentGenerator interface {
	Encounter(ctx context.Context, p domain.Player) (*ai.EncounterProposal, error)
	Line(ctx context.Context, system, user string) (string, error)
}

type service struct {
	repo  repository.Player
	shop  ShopProvider
	gen   ContentGenerator
	locks *concurrency.LockManager
	defs  map[string]Definition
	rnd   utils.Rand
	dice  utils.Rand
	now   func() time.Time
}

// NewService creates a new activity resolver. gen may be nil, in which case
// every encounter and flavor line takes its default.
func NewService(repo repository.Player, shop ShopProvider, gen ContentGenerator, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		shop:  shop,
		gen:   gen,
		locks: locks,
		defs:  Definitions(),
		rnd:   utils.DefaultRand,
		dice:  utils.DefaultRand,
		now:   time.Now,
	}
}

func (s *service) Perform(ctx context.Context, userID, guildID, activity string) (*domain.ActivityResult, error) {
	log := logger.FromContext(ctx)

	def, ok := s.defs[activity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownActivity, activity)
	}

	var enc *domain.Encounter
	if def.NeedsEncounter {
		// Early cooldown check; the one in resolve is authoritative
		p, err := s.repo.GetOrCreatePlayer(ctx, userID, guildID)
		if err != nil {
			return nil, fmt.Errorf("failed to load player: %w", err)
		}
		if err := cooldown.Check(def.Name, p.LastUsed(def.Cooldown), def.Duration, s.now()); err != nil {
			recordOutcome(def.Name, err)
			return nil, err
		}
		e := s.encounter(ctx, *p)
		enc = &e
	}

	res, err := s.resolve(ctx, def, userID, guildID, enc)
	if err != nil {
		recordOutcome(def.Name, err)
		return nil, err
	}

	if def.Flavor != nil {
		res.Flavor = s.line(ctx, def.Flavor, res)
	}
	res.Description = def.Describe(res)

	recordOutcome(def.Name, nil)
	metrics.CoinsEarned.Add(float64(res.CoinsEarned))
	metrics.CoinsSpent.Add(float64(res.CoinsSpent))
	if res.LeveledUp {
		metrics.LevelUps.Inc()
	}

	log.Info(LogMsgActivityResolved,
		"activity", def.Name,
		"user_id", userID,
		"guild_id", guildID,
		"success", res.Success,
		"coins_earned", res.CoinsEarned,
		"xp", res.XPGained)

	return res, nil
}

// resolve is the locked, transactional part of Perform
func (s *service) resolve(ctx context.Context, def Definition, userID, guildID string, enc *domain.Encounter) (*domain.ActivityResult, error) {
	unlock := s.locks.Lock(player.LockKey(userID, guildID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetOrCreatePlayerForUpdate(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	now := s.now()
	if err := cooldown.Check(def.Name, p.LastUsed(def.Cooldown), def.Duration, now); err != nil {
		return nil, err
	}
	if p.Coins < def.Cost {
		return nil, fmt.Errorf("%w: %s costs %d coins", domain.ErrInsufficientFunds, def.Name, def.Cost)
	}

	before := *p
	p.Coins -= def.Cost
	p.SetLastUsed(def.Cooldown, now.Unix())

	res := &domain.ActivityResult{
		Activity:   def.Name,
		Title:      def.Title,
		CoinsSpent: def.Cost,
	}
	round := &Round{Player: p, Result: res, Encounter: enc, Rand: s.rnd, Dice: s.dice}
	def.Resolve(round)

	if round.XP > 0 {
		res.XPGained = round.XP
		res.LeveledUp = leveling.AddExperience(p, round.XP)
	}

	if err := tx.UpdatePlayer(ctx, userID, guildID, domain.Diff(&before, p)); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	res.Player = p
	return res, nil
}

func (s *service) Purchase(ctx context.Context, userID, guildID string, slot int) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	current, err := s.repo.GetOrCreatePlayer(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	items, err := s.shop.GetShop(ctx, guildID, current.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	if slot < 1 || slot > len(items) {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrShopSlotEmpty, slot)
	}
	item := items[slot-1]

	unlock := s.locks.Lock(player.LockKey(userID, guildID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetOrCreatePlayerForUpdate(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if p.Coins < item.Cost {
		return nil, fmt.Errorf("%w: %s costs %d coins", domain.ErrInsufficientFunds, item.Name, item.Cost)
	}

	before := *p
	p.Coins -= item.Cost
	leveledUp := ApplyEffects(p, item.Effects)

	if err := tx.AddInventory(ctx, userID, guildID, item.Name, 1); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if err := tx.UpdatePlayer(ctx, userID, guildID, domain.Diff(&before, p)); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsBought.Inc()
	metrics.CoinsSpent.Add(float64(item.Cost))
	if leveledUp {
		metrics.LevelUps.Inc()
	}
	log.Info(LogMsgPurchaseCompleted, "user_id", userID, "guild_id", guildID, "item", item.Name, "cost", item.Cost)

	return &domain.PurchaseResult{
		Item:      item,
		CoinsLeft: p.Coins,
		LeveledUp: leveledUp,
		Player:    p,
	}, nil
}

// ApplyEffects applies item effects in order. XP goes through leveling; the
// return value reports a level-up.
func ApplyEffects(p *domain.Player, effects []domain.Effect) bool {
	leveledUp := false
	for _, e := range effects {
		if e.Stat == domain.StatXP {
			leveledUp = leveling.AddExperience(p, e.Amount) || leveledUp
			continue
		}
		p.AddStat(e.Stat, e.Amount)
	}
	return leveledUp
}

func (s *service) encounter(ctx context.Context, p domain.Player) domain.Encounter {
	if s.gen == nil {
		return DefaultEncounter()
	}
	proposal, err := s.gen.Encounter(ctx, p)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEncounterFallback, "error", err)
		return DefaultEncounter()
	}
	return NormalizeEncounter(proposal)
}

func (s *service) line(ctx context.Context, f *Flavor, res *domain.ActivityResult) string {
	if s.gen == nil {
		return f.Default
	}
	line, err := s.gen.Line(ctx, f.System, f.Prompt(res))
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFlavorFallback, "activity", res.Activity, "error", err)
		return f.Default
	}
	return line
}

func recordOutcome(activity string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrOnCooldown):
		outcome = metrics.OutcomeCooldown
	case errors.Is(err, domain.ErrInsufficientFunds):
		outcome = metrics.OutcomeInsufficientFunds
	default:
		outcome = metrics.OutcomeError
	}
	metrics.ActivitiesTotal.WithLabelValues(activity, outcome).Inc()
}
