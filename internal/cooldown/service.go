package cooldown

import (
	"fmt"
	"time"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// ErrOnCooldown is returned when an activity is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Seconds returns the remaining wait rounded up to whole seconds
func (e ErrOnCooldown) Seconds() int64 {
	return int64((e.Remaining + time.Second - 1) / time.Second)
}

// Remaining computes max(0, lastUsed + duration - now) with epoch-second timestamps
func Remaining(lastUsed int64, duration time.Duration, now time.Time) time.Duration {
	if lastUsed <= 0 {
		return 0
	}
	readyAt := time.Unix(lastUsed, 0).Add(duration)
	if left := readyAt.Sub(now); left > 0 {
		return left
	}
	return 0
}

// Check returns ErrOnCooldown when the activity cannot run yet
func Check(action string, lastUsed int64, duration time.Duration, now time.Time) error {
	if left := Remaining(lastUsed, duration, now); left > 0 {
		return ErrOnCooldown{Action: action, Remaining: left.Truncate(time.Second) + roundUp(left)}
	}
	return nil
}

func roundUp(d time.Duration) time.Duration {
	if d%time.Second != 0 {
		return time.Second
	}
	return 0
}
