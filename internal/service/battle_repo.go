package service

import (
	"errors"

	"github.com/creature-arena/server/internal/game"
)

var (
	ErrBattleNotFound   = errors.New("battle not found")
	ErrBattleFinished   = errors.New("battle is already finished")
	ErrBattleInProgress = errors.New("battle is still in progress")
	ErrActionInProgress = errors.New("another action is in progress")
	ErrEmptyRoster      = errors.New("at least one creature is required")
	ErrCorruptState     = errors.New("stored battle state is corrupt")
)

// BattleRepo is the narrow persistence surface the battle service needs.
// storage.Repository satisfies it; tests use in-memory mocks.
type BattleRepo interface {
	CreateBattle(r *game.BattleRecord) error
	GetBattleByJoinCode(code string) (*game.BattleRecord, error)
	UpdateBattle(r *game.BattleRecord) error
	ListSpeciesNames() ([]string, error)
	UpdateStatsOnBattleEnd(r *game.BattleRecord, victory bool, reward int) error
}
