package engine

import (
	"math"

	"github.com/creature-arena/server/internal/game"
	"github.com/google/uuid"
)

// fallbackSpecies is used when neither the player roster nor the species
// catalog provides a pool to draw from.
var fallbackSpecies = []string{
	"Emberwing", "Stonehide", "Mistfang", "Thornback", "Gloomtail",
	"Brightmane", "Deepmaw", "Galecrest",
}

// rarityBaseline is the per-rarity base attribute value enemy creatures
// are generated from.
func rarityBaseline(r game.Rarity) int {
	switch r {
	case game.RarityLegendary:
		return 8
	case game.RarityEpic:
		return 7
	case game.RarityRare:
		return 6
	default:
		return 5
	}
}

func rarityCostBonus(r game.Rarity) int {
	switch r {
	case game.RarityLegendary:
		return 3
	case game.RarityEpic:
		return 2
	case game.RarityRare:
		return 1
	default:
		return 0
	}
}

// sampleRarity draws a rarity by cumulative probability against the
// difficulty's weight table. Any residual probability falls back to Common.
func sampleRarity(rng Rand, w game.RarityWeights) game.Rarity {
	roll := rng.Float64()
	acc := w.Common
	if roll < acc {
		return game.RarityCommon
	}
	acc += w.Rare
	if roll < acc {
		return game.RarityRare
	}
	acc += w.Epic
	if roll < acc {
		return game.RarityEpic
	}
	acc += w.Legendary
	if roll < acc {
		return game.RarityLegendary
	}
	return game.RarityCommon
}

// GenerateRoster produces the opposing roster scaled by difficulty. The
// species pool is the distinct species referenced by the player's
// creatures when present, otherwise the provided catalog (or a built-in
// fallback). Count is capped to the difficulty's deck size; a non-positive
// count requests a full deck.
func GenerateRoster(rng Rand, d game.Difficulty, count int, playerCreatures []game.Creature, catalog []string) []game.Creature {
	profile := d.Profile()
	if count <= 0 || count > profile.DeckSize {
		count = profile.DeckSize
	}

	pool := speciesPool(playerCreatures)
	if len(pool) == 0 {
		pool = catalog
	}
	if len(pool) == 0 {
		pool = fallbackSpecies
	}

	roster := make([]game.Creature, 0, count)
	for i := 0; i < count; i++ {
		rarity := sampleRarity(rng, profile.RarityWeights)
		formSpan := profile.FormMax - profile.FormMin + 1
		if formSpan < 1 {
			formSpan = 1
		}
		form := profile.FormMin + rng.Intn(formSpan)

		base := rarityBaseline(rarity) + form
		jitter := func() int { return rng.Intn(3) - 1 }
		scale := func(v int) int { return int(math.Round(float64(v) * profile.StatMultiplier)) }
		attrs := game.Attributes{
			Energy:   scale(base + jitter()),
			Strength: scale(base + jitter()),
			Magic:    scale(base + jitter()),
			Stamina:  scale(base + jitter()),
			Speed:    scale(base + jitter()),
		}

		c := game.Creature{
			ID:          uuid.NewString(),
			SpeciesName: pool[rng.Intn(len(pool))],
			Rarity:      rarity,
			Form:        form,
			Attributes:  attrs,
		}
		c.BattleStats = game.DeriveBattleStats(&c)
		c.CurrentHealth = c.BattleStats.MaxHealth

		// Generated creatures carry a biased deploy cost; the first one is
		// forced cheap to guarantee an affordable opening play.
		cost := 3 + form + rarityCostBonus(rarity)
		if cost > 9 {
			cost = 9
		}
		if i == 0 {
			cost = 3
		}
		c.BattleStats.EnergyCost = cost

		roster = append(roster, c)
	}
	return roster
}

// speciesPool collects the distinct species names referenced by a roster.
func speciesPool(creatures []game.Creature) []string {
	seen := make(map[string]struct{}, len(creatures))
	pool := make([]string, 0, len(creatures))
	for i := range creatures {
		name := creatures[i].SpeciesName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		pool = append(pool, name)
	}
	return pool
}
