package league

import "strings"

// leagueDatabase covers the game leagues whose Gym badges appear on the
// badge list, keyed by normalized name
var leagueDatabase = map[string]*Info{
	"indigo": {
		Name:       "Indigo League",
		Region:     "Kanto",
		Generation: 1,
		Games:      "Red, Blue, Yellow, FireRed, LeafGreen, Let's Go Pikachu & Eevee",
	},
	"johto": {
		Name:       "Johto League",
		Region:     "Johto",
		Generation: 2,
		Games:      "Gold, Silver, Crystal, HeartGold, SoulSilver",
	},
	"hoenn": {
		Name:       "Hoenn League",
		Region:     "Hoenn",
		Generation: 3,
		Games:      "Ruby, Sapphire, Emerald, Omega Ruby, Alpha Sapphire",
	},
	"sinnoh": {
		Name:       "Sinnoh League",
		Region:     "Sinnoh",
		Generation: 4,
		Games:      "Diamond, Pearl, Platinum, Brilliant Diamond, Shining Pearl",
	},
	"unova": {
		Name:       "Unova League",
		Region:     "Unova",
		Generation: 5,
		Games:      "Black, White, Black 2, White 2",
	},
	"kalos": {
		Name:       "Kalos League",
		Region:     "Kalos",
		Generation: 6,
		Games:      "X, Y",
	},
	"galar": {
		Name:       "Galar League",
		Region:     "Galar",
		Generation: 8,
		Games:      "Sword, Shield",
	},
	"paldea": {
		Name:       "Paldea League",
		Region:     "Paldea",
		Generation: 9,
		Games:      "Scarlet, Violet",
	},
}

// lookupLeague searches the league database by normalized name
func lookupLeague(name string) *Info {
	normalized := normalizeName(name)
	if normalized == "" {
		return nil
	}

	// Direct lookup by normalized name
	if info, exists := leagueDatabase[normalized]; exists {
		return info
	}

	// Fallback: try partial matching (substring search)
	for key, info := range leagueDatabase {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return info
		}
	}

	return nil
}
