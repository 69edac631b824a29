package engine

import "github.com/creature-arena/server/internal/game"

// Decider chooses one action for the non-human side. It is a function type
// so the battle state machine can be exercised with scripted deciders in
// tests.
type Decider func(rng Rand, d game.Difficulty, hand, field, oppField []game.Creature, energy int) game.Intent

// Decide is the difficulty-scaled AI policy. Hard and expert currently
// fall back to the easy policy; this mirrors the product's incomplete
// difficulty ladder and is intentional until dedicated policies land.
func Decide(rng Rand, d game.Difficulty, hand, field, oppField []game.Creature, energy int) game.Intent {
	profile := d.Profile()

	// Safeguards: force an end-turn before any policy dispatch.
	if len(field) >= profile.MaxFieldSize || energy <= 0 || (len(hand) == 0 && len(field) == 0) {
		return game.Intent{Kind: game.IntentEndTurn}
	}

	switch d {
	case game.DifficultyMedium:
		return mediumPolicy(rng, profile, hand, field, oppField, energy)
	default:
		return easyPolicy(rng, profile, hand, field, oppField, energy)
	}
}

func easyPolicy(rng Rand, profile game.DifficultyProfile, hand, field, oppField []game.Creature, energy int) game.Intent {
	if len(field) < profile.MaxFieldSize {
		affordable := affordableCreatures(hand, energy)
		if len(affordable) > 0 {
			pick := affordable[rng.Intn(len(affordable))]
			return game.Intent{Kind: game.IntentDeploy, SourceCreatureID: pick.ID}
		}
	}

	if len(field) > 0 && len(oppField) > 0 {
		attacker := &field[rng.Intn(len(field))]
		target := &oppField[rng.Intn(len(oppField))]
		if !attacker.IsDefending && rng.Float64() < 0.3 {
			return game.Intent{Kind: game.IntentDefend, SourceCreatureID: attacker.ID}
		}
		return game.Intent{Kind: game.IntentAttack, SourceCreatureID: attacker.ID, TargetCreatureID: target.ID}
	}

	if len(field) > 0 {
		candidates := nonDefending(field)
		if len(candidates) > 0 {
			pick := candidates[rng.Intn(len(candidates))]
			return game.Intent{Kind: game.IntentDefend, SourceCreatureID: pick.ID}
		}
	}
	return game.Intent{Kind: game.IntentEndTurn}
}

func mediumPolicy(rng Rand, profile game.DifficultyProfile, hand, field, oppField []game.Creature, energy int) game.Intent {
	// Deploy the strongest affordable creature first.
	if len(field) < profile.MaxFieldSize {
		var best *game.Creature
		bestSum := -1
		for i := range hand {
			c := &hand[i]
			if c.BattleStats.EnergyCost > energy {
				continue
			}
			sum := c.Attributes.Energy + c.Attributes.Strength + c.Attributes.Magic + c.Attributes.Stamina + c.Attributes.Speed
			if sum > bestSum {
				best = c
				bestSum = sum
			}
		}
		if best != nil {
			return game.Intent{Kind: game.IntentDeploy, SourceCreatureID: best.ID}
		}
	}

	if len(field) > 0 && len(oppField) > 0 {
		attacker := strongestAttacker(field)
		target := weakestTarget(oppField)
		if attacker.HealthFraction() < 0.3 && !attacker.IsDefending && rng.Float64() < 0.25 {
			return game.Intent{Kind: game.IntentDefend, SourceCreatureID: attacker.ID}
		}
		return game.Intent{Kind: game.IntentAttack, SourceCreatureID: attacker.ID, TargetCreatureID: target.ID}
	}

	if len(field) > 0 {
		// No attack available: guard the most wounded creature. When the
		// opponent field is empty defending is unconditional, otherwise 40%.
		if len(oppField) == 0 || rng.Float64() < 0.4 {
			if cand := mostWounded(nonDefending(field)); cand != nil && cand.HealthFraction() < 0.5 {
				return game.Intent{Kind: game.IntentDefend, SourceCreatureID: cand.ID}
			}
		}
	}
	return game.Intent{Kind: game.IntentEndTurn}
}

func affordableCreatures(hand []game.Creature, energy int) []*game.Creature {
	out := make([]*game.Creature, 0, len(hand))
	for i := range hand {
		if hand[i].BattleStats.EnergyCost <= energy {
			out = append(out, &hand[i])
		}
	}
	return out
}

func nonDefending(field []game.Creature) []*game.Creature {
	out := make([]*game.Creature, 0, len(field))
	for i := range field {
		if !field[i].IsDefending {
			out = append(out, &field[i])
		}
	}
	return out
}

func strongestAttacker(field []game.Creature) *game.Creature {
	best := &field[0]
	bestVal := maxAttack(best)
	for i := 1; i < len(field); i++ {
		if v := maxAttack(&field[i]); v > bestVal {
			best = &field[i]
			bestVal = v
		}
	}
	return best
}

func maxAttack(c *game.Creature) int {
	if c.BattleStats.PhysicalAttack >= c.BattleStats.MagicalAttack {
		return c.BattleStats.PhysicalAttack
	}
	return c.BattleStats.MagicalAttack
}

func weakestTarget(field []game.Creature) *game.Creature {
	best := &field[0]
	for i := 1; i < len(field); i++ {
		if field[i].CurrentHealth < best.CurrentHealth {
			best = &field[i]
		}
	}
	return best
}

func mostWounded(candidates []*game.Creature) *game.Creature {
	var best *game.Creature
	for _, c := range candidates {
		if best == nil || c.HealthFraction() < best.HealthFraction() {
			best = c
		}
	}
	return best
}
