package storage

import (
	"time"

	"github.com/creature-arena/server/internal/game"
)

type Repository interface {
	// Species catalog (seeded from config at migration time).
	ListSpecies() ([]game.SpeciesTemplate, error)
	ListSpeciesNames() ([]string, error)
	GetSpeciesByKey(key string) (*game.SpeciesTemplate, error)

	// Battles.
	CreateBattle(r *game.BattleRecord) error
	GetBattleByID(id uint) (*game.BattleRecord, error)
	GetBattleByJoinCode(code string) (*game.BattleRecord, error)
	UpdateBattle(r *game.BattleRecord) error
	// FindExpiredBattles returns in-battle records not updated since the
	// cutoff. The caller decides how to resolve them (abandonment).
	FindExpiredBattles(cutoff time.Time) ([]game.BattleRecord, error)

	// Player profiles and aggregate stats.
	UpsertPlayer(playerID, name string) error
	GetProfileByPlayerID(playerID string) (*game.PlayerProfile, error)
	UpdateStatsOnBattleEnd(r *game.BattleRecord, victory bool, reward int) error
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
}
