package api

import (
	"github.com/creature-arena/server/internal/storage"
)

// BattleHandler bundles the repository for the gin handlers.
type BattleHandler struct {
	repo storage.Repository
}

func NewBattleHandler(repo storage.Repository) *BattleHandler {
	return &BattleHandler{repo: repo}
}
