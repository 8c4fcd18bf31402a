package cli

import (
	"sort"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/league"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByName   SortOrder = "name"
	SortByLeague SortOrder = "league"
)

// Leagues without metadata sort after every known generation
const unknownLeagueRank = 100

// sortRecords sorts a slice of records based on the specified sort order
func sortRecords(records []*collectible.Record, sortOrder SortOrder) {
	switch sortOrder {
	case SortByName:
		sort.Slice(records, func(i, j int) bool {
			return compareByName(records[i], records[j])
		})
	case SortByLeague:
		sort.Slice(records, func(i, j int) bool {
			return compareByLeague(records[i], records[j])
		})
	}
}

// compareByName compares two records by lower-cased name
// Returns true if record i should come before record j
func compareByName(i, j *collectible.Record) bool {
	ni, nj := strings.ToLower(i.Name), strings.ToLower(j.Name)
	if ni != nj {
		return ni < nj
	}
	// Equal names fall back to league so ordering stays deterministic
	return i.League < j.League
}

// compareByLeague orders records by league generation, then league name,
// then record name
func compareByLeague(i, j *collectible.Record) bool {
	ri, rj := leagueRank(i.League), leagueRank(j.League)
	if ri != rj {
		return ri < rj
	}

	if i.League != j.League {
		return i.League < j.League
	}

	return compareByName(i, j)
}

// leagueRank returns the league's generation for ordering purposes
func leagueRank(name string) int {
	if info := league.Lookup(name); info != nil {
		return info.Generation
	}
	return unknownLeagueRank
}
