package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creature-arena/server/internal/game"
)

type speciesEntry struct {
	Name     string `json:"name"`
	Energy   int    `json:"energy"`
	Strength int    `json:"strength"`
	Magic    int    `json:"magic"`
	Stamina  int    `json:"stamina"`
	Speed    int    `json:"speed"`
}

type rawConfig struct {
	SpeciesList []speciesEntry `json:"species_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional: minutes of inactivity after which an in-battle record is
	// treated as abandoned by the expiry scanner. Defaults to 30.
	BattleTTLMinutes int `json:"battle_ttl_minutes"`
}

// LoadedConfig contains the species catalog to seed and server settings.
type LoadedConfig struct {
	Species       []game.SpeciesTemplate
	ServerAddress string
	BattleTTL     time.Duration
}

// LoadConfig reads the configuration file at path. It requires the key
// `species_list` (snake_case) with at least one entry.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.SpeciesList) == 0 {
		return nil, fmt.Errorf("config file %s: species_list is empty (provide 'species_list' array)", path)
	}

	out := make([]game.SpeciesTemplate, 0, len(rc.SpeciesList))
	nameSet := make(map[string]struct{}, len(rc.SpeciesList))
	for _, s := range rc.SpeciesList {
		if s.Name == "" {
			return nil, fmt.Errorf("config file %s: species entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(s.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species name '%s'", path, s.Name)
		}
		nameSet[ln] = struct{}{}
		out = append(out, game.SpeciesTemplate{
			Name:     s.Name,
			Energy:   s.Energy,
			Strength: s.Strength,
			Magic:    s.Magic,
			Stamina:  s.Stamina,
			Speed:    s.Speed,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	ttl := 30 * time.Minute
	if rc.BattleTTLMinutes > 0 {
		ttl = time.Duration(rc.BattleTTLMinutes) * time.Minute
	}

	return &LoadedConfig{
		Species:       out,
		ServerAddress: addr,
		BattleTTL:     ttl,
	}, nil
}
