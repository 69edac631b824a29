package engine

import (
	"fmt"
	"math"

	"github.com/creature-arena/server/internal/game"
)

// AttackType selects which attack stat an attack uses. Auto picks the
// attacker's stronger stat.
type AttackType string

const (
	AttackAuto     AttackType = ""
	AttackPhysical AttackType = "physical"
	AttackMagical  AttackType = "magical"
)

// AttackResult reports the outcome of one resolved attack.
type AttackResult struct {
	Damage            int     `json:"damage"`
	IsDodged          bool    `json:"is_dodged"`
	IsCritical        bool    `json:"is_critical"`
	AttackType        string  `json:"attack_type"`
	Effectiveness     float64 `json:"effectiveness"`
	EffectivenessText string  `json:"effectiveness_text"`
	Message           string  `json:"message"`
	// NoOp is set when either side lacked derived stats and the attack was
	// skipped (fail-open).
	NoOp bool `json:"no_op,omitempty"`
}

// effectivenessText maps a multiplier to its log wording.
func effectivenessText(m float64) string {
	switch {
	case m >= 1.5:
		return "super effective"
	case m <= 0.75:
		return "not very effective"
	default:
		return "normal"
	}
}

// effectivenessFor walks the attribute triangle (Strength > Stamina >
// Speed > Magic > Energy > Strength) from the defender's leaning.
func effectivenessFor(t AttackType, defender *game.Creature) float64 {
	a := defender.Attributes
	if t == AttackPhysical {
		if a.Stamina > a.Energy {
			return 1.5
		}
		if a.Magic > a.Stamina {
			return 0.75
		}
		return 1.0
	}
	if a.Speed > a.Strength {
		return 1.5
	}
	if a.Energy > a.Magic {
		return 0.75
	}
	return 1.0
}

// ResolveAttack computes one attack and applies the damage to the defender,
// clamped at zero health. If either side lacks derived stats the attack is
// a logged no-op; the resolver never fails.
//
// Resolution order: dodge roll, critical roll, variance sample, damage
// with a floor of 1 whenever the attack was not dodged.
func ResolveAttack(rng Rand, attacker, defender *game.Creature, attackType AttackType) AttackResult {
	if attacker == nil || defender == nil || attacker.BattleStats.IsZero() || defender.BattleStats.IsZero() {
		return AttackResult{
			NoOp:              true,
			EffectivenessText: "normal",
			Message:           "attack skipped: combatant is missing battle stats",
		}
	}

	t := attackType
	if t == AttackAuto {
		if attacker.BattleStats.PhysicalAttack >= attacker.BattleStats.MagicalAttack {
			t = AttackPhysical
		} else {
			t = AttackMagical
		}
	}

	attackValue := attacker.BattleStats.PhysicalAttack
	defenseValue := defender.BattleStats.PhysicalDefense
	if t == AttackMagical {
		attackValue = attacker.BattleStats.MagicalAttack
		defenseValue = defender.BattleStats.MagicalDefense
	}
	if defender.IsDefending {
		defenseValue = int(math.Round(float64(defenseValue) * 1.5))
	}

	// Dodge ends resolution before any further roll.
	if rng.Float64()*100 < defender.BattleStats.DodgeChance {
		msg := fmt.Sprintf("%s attacks %s but the attack is dodged!", attacker.SpeciesName, defender.SpeciesName)
		return AttackResult{
			IsDodged:          true,
			AttackType:        string(t),
			Effectiveness:     1.0,
			EffectivenessText: "normal",
			Message:           msg,
		}
	}

	critMult := 1.0
	isCrit := false
	if rng.Float64()*100 < attacker.BattleStats.CriticalChance {
		critMult = 1.5
		isCrit = true
	}
	variance := 0.9 + rng.Float64()*0.2
	eff := effectivenessFor(t, defender)

	raw := float64(attackValue) * eff * variance * critMult
	dmg := int(math.Round(raw - float64(defenseValue)))
	if dmg < 1 {
		dmg = 1
	}

	defender.CurrentHealth -= dmg
	if defender.CurrentHealth < 0 {
		defender.CurrentHealth = 0
	}

	effText := effectivenessText(eff)
	msg := fmt.Sprintf("%s hits %s with a %s attack for %d damage (%s)", attacker.SpeciesName, defender.SpeciesName, t, dmg, effText)
	if isCrit {
		msg += ", a critical hit!"
	}
	return AttackResult{
		Damage:            dmg,
		IsCritical:        isCrit,
		AttackType:        string(t),
		Effectiveness:     eff,
		EffectivenessText: effText,
		Message:           msg,
	}
}
