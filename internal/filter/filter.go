// Package filter provides record filtering for scraped Pokémon collectibles.
//
// Filters narrow down records loaded from snapshots based on various criteria:
//   - Collectible kinds (ribbons, gym badges)
//   - League sections (name or region, case-insensitive)
//   - Name substrings (case-insensitive)
//   - Description substrings (case-insensitive)
//   - Image presence
//
// Filters can be built directly or parsed from a compact query string.
//
// Example usage:
//
//	// Create a filter for Kanto badges with images
//	f := filter.NewFilter()
//	f.Kinds = []collectible.Kind{collectible.KindBadges}
//	f.Leagues = []string{"kanto"}
//	f.HasImage = boolPtr(true)
//
//	// Apply filter to records
//	filtered := f.Apply(collectible.KindBadges, records)
//
//	// Or parse the same filter from a query
//	f, err := filter.ParseQuery("kind:badges league:kanto has:image")
package filter

import (
	"fmt"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/league"
)

// Filter represents record filtering criteria
type Filter struct {
	// Kind filtering (which snapshots the records come from)
	Kinds []collectible.Kind `json:"kinds,omitempty"`

	// League filtering; matches the section heading or its region,
	// case-insensitive substring
	Leagues []string `json:"leagues,omitempty"`

	// Name filtering (case-insensitive substring match)
	Names []string `json:"names,omitempty"`

	// Description filtering (case-insensitive substring match)
	Descriptions []string `json:"descriptions,omitempty"`

	// Image presence filtering; nil means either
	HasImage *bool `json:"has_image,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all records until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Kinds:        []collectible.Kind{},
		Leagues:      []string{},
		Names:        []string{},
		Descriptions: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all records.
func (f *Filter) IsEmpty() bool {
	return len(f.Kinds) == 0 &&
		len(f.Leagues) == 0 &&
		len(f.Names) == 0 &&
		len(f.Descriptions) == 0 &&
		f.HasImage == nil
}

// MatchesKind checks if records of a kind are in scope for this filter.
// A filter with no kind criteria covers every kind.
func (f *Filter) MatchesKind(kind collectible.Kind) bool {
	if len(f.Kinds) == 0 {
		return true
	}
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Matches checks if a record matches all active filter criteria.
// Returns true if the record passes all filters, false otherwise.
// An empty filter matches all records.
//
// Matching logic:
//   - Kinds: the record's kind must be one of the listed kinds
//   - Leagues: the record's league heading or its region must contain at
//     least one league term (case-insensitive)
//   - Names: the record name must contain at least one term (case-insensitive)
//   - Descriptions: the description must contain at least one term
//   - HasImage: the record must (or must not) carry an image URL
func (f *Filter) Matches(kind collectible.Kind, rec *collectible.Record) bool {
	// Empty filter matches all records
	if f.IsEmpty() {
		return true
	}

	if !f.MatchesKind(kind) {
		return false
	}

	// Check league (heading or region, case-insensitive substring match)
	if len(f.Leagues) > 0 {
		matched := false
		leagueLower := strings.ToLower(rec.League)
		regionLower := ""
		if info := league.Lookup(rec.League); info != nil {
			regionLower = strings.ToLower(info.Region)
		}
		for _, term := range f.Leagues {
			termLower := strings.ToLower(term)
			if strings.Contains(leagueLower, termLower) || (regionLower != "" && strings.Contains(regionLower, termLower)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check name (case-insensitive substring match)
	if len(f.Names) > 0 {
		matched := false
		nameLower := strings.ToLower(rec.Name)
		for _, term := range f.Names {
			if strings.Contains(nameLower, strings.ToLower(term)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check description (case-insensitive substring match)
	if len(f.Descriptions) > 0 {
		matched := false
		descLower := strings.ToLower(rec.Description)
		for _, term := range f.Descriptions {
			if strings.Contains(descLower, strings.ToLower(term)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check image presence
	if f.HasImage != nil {
		if *f.HasImage != (rec.ImageURL != nil) {
			return false
		}
	}

	return true
}

// Apply applies the filter to a list of records of one kind and returns only
// matching records. If the filter is empty, returns the original list
// unchanged.
func (f *Filter) Apply(kind collectible.Kind, records []*collectible.Record) []*collectible.Record {
	if f.IsEmpty() {
		return records
	}

	var filtered []*collectible.Record
	for _, rec := range records {
		if f.Matches(kind, rec) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Returns "No active filters" if the filter is empty.
// Format: "Kinds: gym_badges | Leagues: kanto | Names: boulder | Has image"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = string(k)
		}
		parts = append(parts, fmt.Sprintf("Kinds: %s", strings.Join(kinds, ", ")))
	}

	if len(f.Leagues) > 0 {
		parts = append(parts, fmt.Sprintf("Leagues: %s", strings.Join(f.Leagues, ", ")))
	}

	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}

	if len(f.Descriptions) > 0 {
		parts = append(parts, fmt.Sprintf("Descriptions: %s", strings.Join(f.Descriptions, ", ")))
	}

	if f.HasImage != nil {
		if *f.HasImage {
			parts = append(parts, "Has image")
		} else {
			parts = append(parts, "No image")
		}
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter.
// All slices and pointers are copied to new memory locations,
// ensuring modifications to the clone don't affect the original.
func (f *Filter) Clone() *Filter {
	clone := &Filter{}

	if f.HasImage != nil {
		hi := *f.HasImage
		clone.HasImage = &hi
	}

	if len(f.Kinds) > 0 {
		clone.Kinds = make([]collectible.Kind, len(f.Kinds))
		copy(clone.Kinds, f.Kinds)
	} else {
		clone.Kinds = []collectible.Kind{}
	}

	if len(f.Leagues) > 0 {
		clone.Leagues = make([]string, len(f.Leagues))
		copy(clone.Leagues, f.Leagues)
	} else {
		clone.Leagues = []string{}
	}

	if len(f.Names) > 0 {
		clone.Names = make([]string, len(f.Names))
		copy(clone.Names, f.Names)
	} else {
		clone.Names = []string{}
	}

	if len(f.Descriptions) > 0 {
		clone.Descriptions = make([]string, len(f.Descriptions))
		copy(clone.Descriptions, f.Descriptions)
	} else {
		clone.Descriptions = []string{}
	}

	return clone
}
