// Package league provides league metadata lookup for gym badge records
package league

import (
	"strings"
)

// Info contains detailed information about a Pokémon game league
type Info struct {
	Name       string // Full league name (e.g., "Indigo League")
	Region     string // Region whose Gyms feed the league
	Generation int    // Generation the league debuted in
	Games      string // Main series games featuring the league
}

// Lookup attempts to find league information by section heading or name.
// Returns nil if no information is available.
func Lookup(name string) *Info {
	return lookupLeague(name)
}

// normalizeName converts a league heading to a normalized form for matching
func normalizeName(name string) string {
	// Convert to lowercase
	normalized := strings.ToLower(name)
	// Trim whitespace
	normalized = strings.TrimSpace(normalized)
	// Remove common suffixes
	normalized = strings.TrimSuffix(normalized, " league")
	normalized = strings.TrimSuffix(normalized, " region")
	return normalized
}
