package main

import (
	"github.com/creature-arena/server/internal/config"
	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/logging"
	"github.com/creature-arena/server/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create an arena_config.json with a 'species_list' array of species objects (name,energy,strength,magic,stamina,speed) and optional keys: server.address, battle_ttl_minutes",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, species []game.SpeciesTemplate) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, species)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
