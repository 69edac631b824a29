package game

import (
	"math"

	"github.com/google/uuid"
)

// DefaultBattleStats is the fixed bundle used when a creature record
// carries no base attributes. Stat derivation never fails.
func DefaultBattleStats() BattleStats {
	return BattleStats{
		PhysicalAttack:  10,
		MagicalAttack:   10,
		PhysicalDefense: 5,
		MagicalDefense:  5,
		MaxHealth:       50,
		Initiative:      10,
		CriticalChance:  5,
		DodgeChance:     3,
		EnergyCost:      3,
	}
}

// DeriveBattleStats computes combat-usable stats from a creature's base
// attributes, rarity, form and combination level.
func DeriveBattleStats(c *Creature) BattleStats {
	if c == nil || c.Attributes.IsZero() {
		return DefaultBattleStats()
	}
	a := c.Attributes
	rarityMult := c.Rarity.Multiplier()
	formMult := 1.0 + 0.25*float64(c.Form)
	combBonus := 1.0 + 0.1*float64(c.CombinationLevel)

	round := func(v float64) int { return int(math.Round(v)) }

	energyCost := round(10 - 0.2*float64(a.Energy))
	if energyCost < 1 {
		energyCost = 1
	}
	return BattleStats{
		PhysicalAttack:  round((10 + 2*float64(a.Strength) + 0.5*float64(a.Speed)) * formMult * combBonus),
		MagicalAttack:   round((10 + 2*float64(a.Magic) + 0.5*float64(a.Energy)) * formMult * combBonus),
		PhysicalDefense: round((5 + 1.5*float64(a.Stamina) + 0.5*float64(a.Strength)) * formMult * combBonus),
		MagicalDefense:  round((5 + 1.5*float64(a.Energy) + 0.5*float64(a.Magic)) * formMult * combBonus),
		MaxHealth:       round((50 + 3*float64(a.Stamina) + float64(a.Energy)) * rarityMult * formMult),
		Initiative:      10 + 2*a.Speed,
		CriticalChance:  math.Min(5+0.5*float64(a.Speed), 30),
		DodgeChance:     math.Min(3+0.3*float64(a.Speed), 20),
		EnergyCost:      energyCost,
	}
}

// Normalize validates a creature supplied at the system boundary and fills
// defaults so the engine can assume well-formed input: identity, bounded
// form, derived stats and a full health bar.
func (c *Creature) Normalize() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Rarity = ParseRarity(string(c.Rarity))
	if c.Form < 0 {
		c.Form = 0
	}
	if c.Form > 3 {
		c.Form = 3
	}
	if c.CombinationLevel < 0 {
		c.CombinationLevel = 0
	}
	if c.BattleStats.IsZero() {
		c.BattleStats = DeriveBattleStats(c)
	}
	if c.CurrentHealth <= 0 || c.CurrentHealth > c.BattleStats.MaxHealth {
		c.CurrentHealth = c.BattleStats.MaxHealth
	}
	c.ActiveEffects = nil
	c.IsDefending = false
}
