package main

import (
	"time"

	"github.com/creature-arena/server/internal/constants"
	"github.com/creature-arena/server/internal/logging"
	"github.com/creature-arena/server/internal/service"
	"github.com/creature-arena/server/internal/storage"
)

// startExpiryScanner periodically finishes battles that have seen no action
// within the configured TTL, so abandoned matches never linger in-battle.
func startExpiryScanner(repo storage.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-ttl)
			recs, err := repo.FindExpiredBattles(cutoff)
			if err != nil {
				logging.Error("expiry scanner failed to list battles", err, nil)
				continue
			}
			for i := range recs {
				rec := &recs[i]
				if err := service.HandleExpiredBattle(repo, rec); err != nil {
					logging.Error("failed to expire battle", err, logging.Fields{constants.LogFieldBattleCode: rec.JoinCode})
					continue
				}
				logging.Info("battle expired due to inactivity", logging.Fields{constants.LogFieldBattleCode: rec.JoinCode})
			}
		}
	}()
}
