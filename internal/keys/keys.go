package keys

import (
	"sort"
	"strings"
)

// SpeciesKey produces a canonical key for a single species name. Behavior:
// trims, lower-cases and replaces spaces with underscores. Suitable for
// stable DB lookup keys.
func SpeciesKey(name string) string {
	s := strings.TrimSpace(name)
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

// PoolKey produces a canonical key for a set of species names (the enemy
// generator's species pool). Names are canonicalized, deduplicated, sorted
// and joined with underscore so the same pool always yields the same key.
func PoolKey(names []string) string {
	seen := make(map[string]struct{}, len(names))
	parts := make([]string, 0, len(names))
	for _, n := range names {
		k := SpeciesKey(n)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		parts = append(parts, k)
	}
	sort.Strings(parts)
	return strings.Join(parts, "_")
}
