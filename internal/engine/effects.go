package engine

import (
	"fmt"

	"github.com/creature-arena/server/internal/game"
	"github.com/google/uuid"
)

// applyStatDeltas mutates a creature's battle stats by the given deltas.
// Integer stats clamp at zero; chance stats stay within their caps.
func applyStatDeltas(c *game.Creature, deltas map[game.Stat]int) {
	s := &c.BattleStats
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	for stat, d := range deltas {
		switch stat {
		case game.StatPhysicalAttack:
			s.PhysicalAttack = clamp(s.PhysicalAttack + d)
		case game.StatMagicalAttack:
			s.MagicalAttack = clamp(s.MagicalAttack + d)
		case game.StatPhysicalDefense:
			s.PhysicalDefense = clamp(s.PhysicalDefense + d)
		case game.StatMagicalDefense:
			s.MagicalDefense = clamp(s.MagicalDefense + d)
		case game.StatMaxHealth:
			s.MaxHealth = clamp(s.MaxHealth + d)
			if c.CurrentHealth > s.MaxHealth {
				c.CurrentHealth = s.MaxHealth
			}
		case game.StatInitiative:
			s.Initiative = clamp(s.Initiative + d)
		case game.StatCriticalChance:
			s.CriticalChance += float64(d)
			if s.CriticalChance < 0 {
				s.CriticalChance = 0
			}
		case game.StatDodgeChance:
			s.DodgeChance += float64(d)
			if s.DodgeChance < 0 {
				s.DodgeChance = 0
			}
		case game.StatEnergyCost:
			v := s.EnergyCost + d
			if v < 1 {
				v = 1
			}
			s.EnergyCost = v
		}
	}
}

// recomputeStats re-derives stats after buff application. Pass-through by
// design of the current stat model: deltas are folded directly into
// BattleStats, so there is nothing to recompute.
func recomputeStats(c *game.Creature) {
	_ = c
}

// ApplyPayload applies an effect payload to a target creature: instant
// damage/healing first, then the one-time stat deltas, then (if the payload
// is timed) an Effect entry tracking the remaining duration. Returns log
// messages describing what happened. Self-heal components are the caller's
// responsibility since they apply to the caster, not the target.
func ApplyPayload(target *game.Creature, p EffectPayload) []string {
	if target == nil || p.IsZero() {
		return []string{"item had no effect"}
	}
	msgs := make([]string, 0, 2)

	if p.Damage > 0 {
		target.CurrentHealth -= p.Damage
		if target.CurrentHealth < 0 {
			target.CurrentHealth = 0
		}
		msgs = append(msgs, fmt.Sprintf("%s takes %d damage from %s", target.SpeciesName, p.Damage, p.Name))
	}
	if p.Healing > 0 {
		target.CurrentHealth += p.Healing
		if target.CurrentHealth > target.BattleStats.MaxHealth {
			target.CurrentHealth = target.BattleStats.MaxHealth
		}
		msgs = append(msgs, fmt.Sprintf("%s recovers %d health from %s", target.SpeciesName, p.Healing, p.Name))
	}
	if len(p.StatEffect) > 0 {
		// Stat deltas apply exactly once, here at creation. The tick path
		// never reapplies them.
		applyStatDeltas(target, p.StatEffect)
		recomputeStats(target)
		msgs = append(msgs, fmt.Sprintf("%s gains %s", target.SpeciesName, p.Name))
	}
	if p.Duration > 0 || p.TickHealth != 0 {
		dur := p.Duration
		if dur <= 0 {
			dur = 1
		}
		target.ActiveEffects = append(target.ActiveEffects, game.Effect{
			ID:               uuid.NewString(),
			Name:             p.Name,
			Icon:             p.Icon,
			Kind:             p.Kind,
			Description:      p.Description,
			Duration:         dur,
			StatEffect:       p.StatEffect,
			HealthEffect:     p.TickHealth,
			ExpiryStatEffect: p.ExpiryStatEffect,
		})
	}
	return msgs
}

// TickReport summarizes one effect-engine pass over a field.
type TickReport struct {
	Messages []string
	Removed  int
}

// TickField runs the once-per-turn effect pass over a side's field: apply
// per-tick health effects, decrement durations, drop expired effects
// (applying any charge payoff) and remove creatures whose health reached
// zero. Defend stances are turn-scoped, not effect-scoped; the state
// machine clears them when the defender's own turn comes back around.
func TickField(field []game.Creature) ([]game.Creature, TickReport) {
	var rep TickReport
	for i := range field {
		c := &field[i]
		statApplied := false
		kept := c.ActiveEffects[:0]
		for _, eff := range c.ActiveEffects {
			if eff.HealthEffect != 0 {
				c.CurrentHealth += eff.HealthEffect
				if c.CurrentHealth < 0 {
					c.CurrentHealth = 0
				}
				if c.CurrentHealth > c.BattleStats.MaxHealth {
					c.CurrentHealth = c.BattleStats.MaxHealth
				}
				if eff.HealthEffect > 0 {
					rep.Messages = append(rep.Messages, fmt.Sprintf("%s recovers %d health (%s)", c.SpeciesName, eff.HealthEffect, eff.Name))
				} else {
					rep.Messages = append(rep.Messages, fmt.Sprintf("%s suffers %d damage (%s)", c.SpeciesName, -eff.HealthEffect, eff.Name))
				}
			}
			eff.Duration--
			if eff.Duration <= 0 {
				if len(eff.ExpiryStatEffect) > 0 {
					applyStatDeltas(c, eff.ExpiryStatEffect)
					statApplied = true
					rep.Messages = append(rep.Messages, fmt.Sprintf("%s completes on %s", eff.Name, c.SpeciesName))
				} else {
					rep.Messages = append(rep.Messages, fmt.Sprintf("%s wears off %s", eff.Name, c.SpeciesName))
				}
				continue
			}
			kept = append(kept, eff)
		}
		if len(kept) == 0 {
			c.ActiveEffects = nil
		} else {
			c.ActiveEffects = kept
		}
		if statApplied {
			recomputeStats(c)
		}
	}

	survivors := field[:0]
	for i := range field {
		if field[i].Alive() {
			survivors = append(survivors, field[i])
		} else {
			rep.Removed++
			rep.Messages = append(rep.Messages, fmt.Sprintf("%s succumbs to its wounds", field[i].SpeciesName))
		}
	}
	if len(survivors) == 0 {
		return nil, rep
	}
	return survivors, rep
}
