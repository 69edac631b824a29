package main

import (
	"os"

	"github.com/creature-arena/server/internal/api"
	"github.com/creature-arena/server/internal/constants"
	"github.com/creature-arena/server/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg.Species)

	handler := api.NewBattleHandler(repo)
	startExpiryScanner(repo, cfg.BattleTTL)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, handler.GetVersion)
		apiRoutes.GET(constants.RouteSpecies, handler.ListSpecies)
		apiRoutes.GET(constants.RouteDifficulties, handler.ListDifficulties)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayerStats, handler.GetPlayerStats)

		apiRoutes.POST(constants.RouteBattles, handler.CreateBattle)
		apiRoutes.GET(constants.RouteBattleByCode, handler.GetBattle)
		apiRoutes.POST(constants.RouteBattleAction, handler.SubmitAction)
		apiRoutes.GET(constants.RouteBattleResult, handler.GetResult)
		apiRoutes.POST(constants.RouteBattleRestart, handler.RestartBattle)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
