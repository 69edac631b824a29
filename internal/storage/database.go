package storage

import (
	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/keys"
	"github.com/creature-arena/server/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated via
// AutoMigrate and seeds the species catalog from the server config when
// the table is empty.
func OpenAndMigrate(dataSourceName string, speciesFromConfig []game.SpeciesTemplate) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.SpeciesTemplate{}, &game.BattleRecord{}, &game.PlayerProfile{}); err != nil {
		return nil, err
	}

	seedSpecies(db, speciesFromConfig)
	return db, nil
}

func seedSpecies(db *gorm.DB, speciesFromConfig []game.SpeciesTemplate) {
	var count int64
	db.Model(&game.SpeciesTemplate{}).Count(&count)
	if count > 0 {
		return
	}
	species := make([]game.SpeciesTemplate, 0, len(speciesFromConfig))
	for _, s := range speciesFromConfig {
		s.Key = keys.SpeciesKey(s.Name)
		species = append(species, s)
	}
	if len(species) == 0 {
		return
	}
	if err := db.Create(&species).Error; err != nil {
		logging.Error("failed to seed species catalog", err, nil)
		return
	}
	logging.Info("species catalog seeded", logging.Fields{"count": len(species)})
}
