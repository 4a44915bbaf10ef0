// Package leveling converts accumulated experience into levels.
package leveling

import "github.com/RobNel12/newbot-ai/internal/domain"

// Threshold is the XP needed to advance from level to level+1
func Threshold(level int) int {
	return domain.XPPerLevel * level
}

// AddExperience grants amount XP to p and performs every level-up it pays for,
// carrying the remainder. Returns true when at least one level was gained.
// Non-positive amounts leave p unchanged.
func AddExperience(p *domain.Player, amount int) bool {
	if amount <= 0 {
		return false
	}

	p.XP += amount
	if p.Level < 1 {
		p.Level = 1
	}
	start := p.Level
	for p.XP >= Threshold(p.Level) {
		p.XP -= Threshold(p.Level)
		p.Level++
	}
	return p.Level > start
}
