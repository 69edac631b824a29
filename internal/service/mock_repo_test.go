package service

import (
	"github.com/creature-arena/server/internal/game"
)

// mockRepo is an in-memory BattleRepo for service tests.
type mockRepo struct {
	battles map[string]*game.BattleRecord
	species []string

	createErr error
	statsErr  error

	statsCalls  int
	lastVictory bool
	lastReward  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{battles: make(map[string]*game.BattleRecord)}
}

func (m *mockRepo) CreateBattle(r *game.BattleRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *r
	m.battles[r.JoinCode] = &cp
	return nil
}

func (m *mockRepo) GetBattleByJoinCode(code string) (*game.BattleRecord, error) {
	rec, ok := m.battles[code]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockRepo) UpdateBattle(r *game.BattleRecord) error {
	cp := *r
	m.battles[r.JoinCode] = &cp
	return nil
}

func (m *mockRepo) ListSpeciesNames() ([]string, error) {
	return m.species, nil
}

func (m *mockRepo) UpdateStatsOnBattleEnd(r *game.BattleRecord, victory bool, reward int) error {
	m.statsCalls++
	m.lastVictory = victory
	m.lastReward = reward
	return m.statsErr
}
