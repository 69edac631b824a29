package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/creature-arena/server/internal/engine"
	"github.com/creature-arena/server/internal/game"
	"github.com/google/uuid"
)

// initialSideEnergy is the energy both sides open the battle with.
const initialSideEnergy = 10

// StartRequest is the battle setup supplied by collaborators: the player's
// owned creatures, item inventories and the chosen difficulty. A zero Seed
// asks the service to derive one from the clock.
type StartRequest struct {
	PlayerID   string          `json:"player_id"`
	PlayerName string          `json:"player_name"`
	Difficulty string          `json:"difficulty"`
	Creatures  []game.Creature `json:"creatures"`
	Tools      []game.Tool     `json:"tools"`
	Spells     []game.Spell    `json:"spells"`
	Seed       int64           `json:"seed,omitempty"`
}

// StartBattle normalizes the player roster, generates the difficulty-scaled
// enemy roster and persists a fresh battle in the in-battle phase.
func StartBattle(repo BattleRepo, req StartRequest) (*game.BattleRecord, error) {
	if len(req.Creatures) == 0 {
		return nil, ErrEmptyRoster
	}

	state, err := buildState(repo, req)
	if err != nil {
		return nil, err
	}

	rec := &game.BattleRecord{
		JoinCode:   newJoinCode(),
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		Difficulty: string(state.Difficulty),
	}
	if setup, err := json.Marshal(req); err == nil {
		rec.SetupJSON = string(setup)
	}
	if err := rec.SetState(state); err != nil {
		return nil, err
	}
	if err := repo.CreateBattle(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RestartBattle rebuilds a finished battle from its stored setup request,
// re-entering setup with a fresh seed. The battle must be over.
func RestartBattle(repo BattleRepo, joinCode string) (*game.BattleRecord, error) {
	rec, err := repo.GetBattleByJoinCode(joinCode)
	if err != nil || rec == nil {
		return nil, ErrBattleNotFound
	}
	st, err := rec.State()
	if err != nil {
		return nil, ErrCorruptState
	}
	if !st.Phase.Over() {
		return nil, ErrBattleInProgress
	}

	var req StartRequest
	if err := json.Unmarshal([]byte(rec.SetupJSON), &req); err != nil {
		return nil, ErrCorruptState
	}
	req.Seed = 0
	fresh, err := buildState(repo, req)
	if err != nil {
		return nil, err
	}
	rec.StatsCounted = false
	if err := rec.SetState(fresh); err != nil {
		return nil, err
	}
	if err := repo.UpdateBattle(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// buildState performs the setup phase: boundary normalization of the
// roster, deck/hand split, enemy generation and the transition into battle.
func buildState(repo BattleRepo, req StartRequest) (*game.BattleState, error) {
	difficulty := game.ParseDifficulty(req.Difficulty)
	profile := difficulty.Profile()

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := engine.NewRand(seed)

	roster := make([]game.Creature, len(req.Creatures))
	copy(roster, req.Creatures)
	for i := range roster {
		roster[i].Normalize()
	}

	catalog, _ := repo.ListSpeciesNames()
	enemyRoster := engine.GenerateRoster(rng, difficulty, profile.DeckSize, roster, catalog)

	state := &game.BattleState{
		Phase:      game.PhaseSetup,
		Turn:       1,
		ActiveSide: game.SidePlayer,
		Difficulty: difficulty,
		Seed:       seed,
		Player: game.SideState{
			Deck:   roster,
			Energy: initialSideEnergy,
			Tools:  normalizeTools(req.Tools),
			Spells: normalizeSpells(req.Spells),
		},
		Enemy: game.SideState{
			Deck:   enemyRoster,
			Energy: initialSideEnergy,
		},
	}
	dealOpeningHands(state, profile)

	state.Phase = game.PhaseInBattle
	state.AddLog("battle begins on " + string(difficulty) + " difficulty")
	return state, nil
}

func dealOpeningHands(state *game.BattleState, profile game.DifficultyProfile) {
	for _, side := range []game.Side{game.SidePlayer, game.SideEnemy} {
		ss := state.SideState(side)
		n := profile.InitialHandSize
		if n > len(ss.Deck) {
			n = len(ss.Deck)
		}
		ss.Hand = append(ss.Hand, ss.Deck[:n]...)
		ss.Deck = ss.Deck[n:]
	}
}

func normalizeTools(tools []game.Tool) []game.Tool {
	out := make([]game.Tool, len(tools))
	copy(out, tools)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		out[i].Type = game.ParseAttributeType(string(out[i].Type))
		out[i].Kind = game.ParseEffectKind(string(out[i].Kind))
		out[i].Used = false
	}
	return out
}

func normalizeSpells(spells []game.Spell) []game.Spell {
	out := make([]game.Spell, len(spells))
	copy(out, spells)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		out[i].Type = game.ParseAttributeType(string(out[i].Type))
		out[i].Kind = game.ParseEffectKind(string(out[i].Kind))
		out[i].Used = false
	}
	return out
}

// newJoinCode derives a short uppercase battle code from a fresh UUID.
func newJoinCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
