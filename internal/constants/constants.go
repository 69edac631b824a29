package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"

	// Defaults
	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteSpecies       = "/species"
	RouteDifficulties  = "/difficulties"
	RouteLeaderboard   = "/leaderboard"
	RoutePlayerStats   = "/players/:playerID/stats"
	RouteBattles       = "/battles"
	RouteBattleByCode  = "/battles/:battleCode"
	RouteBattleAction  = "/battles/:battleCode/action"
	RouteBattleResult  = "/battles/:battleCode/result"
	RouteBattleRestart = "/battles/:battleCode/restart"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyBattle  = "battle"
	JSONKeyResult  = "result"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrInvalidBattleCode     = "Invalid battle code"
	ErrBattleNotFound        = "Battle not found"
	ErrBattleFinished        = "Battle is already finished"
	ErrBattleInProgress      = "Battle is still in progress"
	ErrActionInProgress      = "An action is already being processed"
	ErrRosterRequired        = "At least one creature is required"
	ErrFailedCreateBattle    = "Failed to create battle"
	ErrFailedFetchBattle     = "Failed to fetch battle"
	ErrFailedFetchSpecies    = "Failed to fetch species"
	ErrFailedFetchLeaders    = "Failed to fetch leaderboard"
	ErrActionRejected        = "Action rejected"
	ErrPlayerStatsNotFound   = "No stats recorded for this player"
	ErrFailedRestartBattle   = "Failed to restart battle"
	ErrStateCorrupt          = "Stored battle state is corrupt"
)

// Logging field names
const (
	LogFieldBattleCode = "battle_code"
	LogFieldPlayerID   = "player_id"
	LogFieldDifficulty = "difficulty"
	LogFieldIntent     = "intent"
	LogFieldAddr       = "addr"
)
