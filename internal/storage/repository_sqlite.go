package storage

import (
	"errors"
	"time"

	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/keys"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated gorm DB in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListSpecies() ([]game.SpeciesTemplate, error) {
	var species []game.SpeciesTemplate
	if err := r.db.Order("name asc").Find(&species).Error; err != nil {
		return nil, err
	}
	return species, nil
}

func (r *sqliteRepository) ListSpeciesNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&game.SpeciesTemplate{}).Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *sqliteRepository) GetSpeciesByKey(key string) (*game.SpeciesTemplate, error) {
	var s game.SpeciesTemplate
	if err := r.db.Where("key = ?", keys.SpeciesKey(key)).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) CreateBattle(rec *game.BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) GetBattleByJoinCode(code string) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.Where("join_code = ?", code).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) UpdateBattle(rec *game.BattleRecord) error {
	return r.db.Save(rec).Error
}

func (r *sqliteRepository) FindExpiredBattles(cutoff time.Time) ([]game.BattleRecord, error) {
	var recs []game.BattleRecord
	err := r.db.
		Where("phase = ? AND updated_at <= ?", string(game.PhaseInBattle), cutoff).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) UpsertPlayer(playerID, name string) error {
	if playerID == "" {
		return errors.New("player id is required")
	}
	profile := game.PlayerProfile{PlayerID: playerID, PlayerName: name}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"player_name"}),
	}).Create(&profile).Error
}

func (r *sqliteRepository) GetProfileByPlayerID(playerID string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	if err := r.db.Where("player_id = ?", playerID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(rec *game.BattleRecord, victory bool, reward int) error {
	if rec.PlayerID == "" {
		return nil
	}
	var p game.PlayerProfile
	err := r.db.Where("player_id = ?", rec.PlayerID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = game.PlayerProfile{PlayerID: rec.PlayerID, PlayerName: rec.PlayerName}
	} else if err != nil {
		return err
	}
	p.BattlesPlayed++
	if victory {
		p.Victories++
		p.TotalReward += reward
	} else {
		p.Defeats++
	}
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []game.PlayerProfile
	err := r.db.
		Order("victories desc, total_reward desc, battles_played asc").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
