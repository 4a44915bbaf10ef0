package worker

import "time"

// Shop prune scheduling. Runs a few minutes after each UTC midnight, once the
// new day's shops start being generated.
const (
	PruneOffset = 5 * time.Minute

	// Timers further out than StandbyThreshold wake StandbyLead before the run
	// and reschedule, so a long sleep never overshoots.
	StandbyThreshold = 1 * time.Hour
	StandbyLead      = 45 * time.Minute

	// An early fire with more than EarlyFireTolerance left is rescheduled
	EarlyFireTolerance = 10 * time.Second
	LateFireWindow     = 23 * time.Hour
)

// Log messages for the shop prune worker
const (
	LogMsgShopPruneStarting  = "Shop prune starting"
	LogMsgShopPruneCompleted = "Shop prune completed"
	LogMsgShopPruneFailed    = "Shop prune failed"
	LogMsgShopPruneStandby   = "Shop prune standby"
	LogMsgShopPruneScheduled = "Shop prune scheduled"
	LogMsgShopPruneShutdown  = "Shutting down shop prune worker"
	LogMsgShopPruneCancelled = "Cancelled pending shop prune"
	LogMsgShopPruneStopped   = "Shop prune worker shutdown complete"
	LogMsgShopPruneTimeout   = "Shop prune worker shutdown timeout, a prune may still be running"
)
