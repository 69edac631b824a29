package game

import (
	"encoding/json"

	"gorm.io/gorm"
)

// SpeciesTemplate is a catalog species seeded from the server config. The
// base attributes give the enemy generator a fallback pool when the player
// roster references no species.
type SpeciesTemplate struct {
	gorm.Model
	Key      string `json:"key" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Energy   int    `json:"energy"`
	Strength int    `json:"strength"`
	Magic    int    `json:"magic"`
	Stamina  int    `json:"stamina"`
	Speed    int    `json:"speed"`
}

// TableName keeps the persisted table named `species_templates`.
func (SpeciesTemplate) TableName() string { return "species_templates" }

// BattleRecord persists one battle. The full battle state is stored as a
// serialized snapshot (`state_json`); a few fields are flattened for
// querying (phase, turn, updated-at drives the expiry scanner). SetupJSON
// retains the original setup request so a finished battle can be restarted.
type BattleRecord struct {
	gorm.Model
	JoinCode     string `json:"join_code" gorm:"uniqueIndex"`
	PlayerID     string `json:"player_id" gorm:"index"`
	PlayerName   string `json:"player_name"`
	Difficulty   string `json:"difficulty"`
	Phase        string `json:"phase"`
	Turn         int    `json:"turn"`
	StateJSON    string `json:"-" gorm:"column:state_json;type:text"`
	SetupJSON    string `json:"-" gorm:"column:setup_json;type:text"`
	StatsCounted bool   `json:"-"`
}

// TableName keeps the persisted table named `battles`.
func (BattleRecord) TableName() string { return "battles" }

// State deserializes the battle snapshot.
func (r *BattleRecord) State() (*BattleState, error) {
	var st BattleState
	if err := json.Unmarshal([]byte(r.StateJSON), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SetState serializes the battle snapshot and syncs the flattened query
// columns.
func (r *BattleRecord) SetState(st *BattleState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	r.StateJSON = string(b)
	r.Phase = string(st.Phase)
	r.Turn = st.Turn
	return nil
}

// PlayerProfile stores per-player aggregate battle stats.
type PlayerProfile struct {
	gorm.Model
	PlayerID      string `json:"player_id" gorm:"uniqueIndex"`
	PlayerName    string `json:"player_name"`
	BattlesPlayed int    `json:"battles_played"`
	Victories     int    `json:"victories"`
	Defeats       int    `json:"defeats"`
	TotalReward   int    `json:"total_reward"`
}

// TableName keeps the persisted table named `player_profiles`.
func (PlayerProfile) TableName() string { return "player_profiles" }
