package game

import "strings"

// Difficulty selects the opponent's generation and policy profile.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// ParseDifficulty normalizes a free-form difficulty string; unknown values
// default to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	case DifficultyExpert:
		return DifficultyExpert
	default:
		return DifficultyMedium
	}
}

// RarityWeights is a cumulative-draw probability table. Weights need not
// sum to 1; residual probability falls back to Common.
type RarityWeights struct {
	Common    float64 `json:"common"`
	Rare      float64 `json:"rare"`
	Epic      float64 `json:"epic"`
	Legendary float64 `json:"legendary"`
}

// DifficultyProfile is the per-level tuning block consumed by the enemy
// generator, the AI policy and the battle state machine.
type DifficultyProfile struct {
	StatMultiplier   float64       `json:"stat_multiplier"`
	FormMin          int           `json:"form_min"`
	FormMax          int           `json:"form_max"`
	RarityWeights    RarityWeights `json:"rarity_weights"`
	InitialHandSize  int           `json:"initial_hand_size"`
	MaxHandSize      int           `json:"max_hand_size"`
	DeckSize         int           `json:"deck_size"`
	MaxFieldSize     int           `json:"max_field_size"`
	EnergyRegenBase  int           `json:"energy_regen_base"`
	RewardMultiplier float64       `json:"reward_multiplier"`
}

var profiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy: {
		StatMultiplier:   0.8,
		FormMin:          0,
		FormMax:          1,
		RarityWeights:    RarityWeights{Common: 0.70, Rare: 0.25, Epic: 0.05},
		InitialHandSize:  3,
		MaxHandSize:      5,
		DeckSize:         6,
		MaxFieldSize:     3,
		EnergyRegenBase:  4,
		RewardMultiplier: 1.0,
	},
	DifficultyMedium: {
		StatMultiplier:   1.0,
		FormMin:          0,
		FormMax:          2,
		RarityWeights:    RarityWeights{Common: 0.50, Rare: 0.30, Epic: 0.20},
		InitialHandSize:  4,
		MaxHandSize:      6,
		DeckSize:         8,
		MaxFieldSize:     4,
		EnergyRegenBase:  4,
		RewardMultiplier: 1.5,
	},
	DifficultyHard: {
		StatMultiplier:   1.2,
		FormMin:          1,
		FormMax:          3,
		RarityWeights:    RarityWeights{Common: 0.30, Rare: 0.40, Epic: 0.20, Legendary: 0.10},
		InitialHandSize:  4,
		MaxHandSize:      6,
		DeckSize:         10,
		MaxFieldSize:     4,
		EnergyRegenBase:  4,
		RewardMultiplier: 2.0,
	},
	DifficultyExpert: {
		StatMultiplier:   1.5,
		FormMin:          2,
		FormMax:          3,
		RarityWeights:    RarityWeights{Common: 0.15, Rare: 0.35, Epic: 0.30, Legendary: 0.20},
		InitialHandSize:  5,
		MaxHandSize:      7,
		DeckSize:         12,
		MaxFieldSize:     5,
		EnergyRegenBase:  4,
		RewardMultiplier: 3.0,
	},
}

// Profile returns the tuning block for a difficulty. Unknown difficulties
// resolve to medium.
func (d Difficulty) Profile() DifficultyProfile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyMedium]
}

// MaxSideEnergy caps the per-side energy resource.
const MaxSideEnergy = 15
