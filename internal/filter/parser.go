package filter

import (
	"fmt"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
)

// ParseQuery parses a compact query string into a Filter.
//
// Supported terms:
//   - "kind:badges" or "kind:ribbons" - collectible kind (comma lists allowed;
//     "badge", "gym_badges" and "ribbon" are accepted spellings)
//   - "league:kanto" - league heading or region (comma lists allowed)
//   - "desc:strength" - description substring
//   - "has:image" or "has:no-image" - image presence
//   - any bare word - name substring
//
// Terms are combined with AND; comma lists and repeated terms of the same
// criterion are combined with OR. For example:
//
//	kind:badges league:kanto boulder
//
// matches Kanto gym badges whose name contains "boulder".
//
// Returns an error for unknown prefixed terms or unrecognized kinds.
func ParseQuery(input string) (*Filter, error) {
	f := NewFilter()

	for _, token := range strings.Fields(input) {
		prefix, value, found := strings.Cut(token, ":")
		if !found {
			f.Names = append(f.Names, token)
			continue
		}

		switch strings.ToLower(prefix) {
		case "kind":
			for _, v := range strings.Split(value, ",") {
				kind, err := ParseKind(v)
				if err != nil {
					return nil, err
				}
				f.Kinds = append(f.Kinds, kind)
			}

		case "league":
			for _, v := range strings.Split(value, ",") {
				if v != "" {
					f.Leagues = append(f.Leagues, v)
				}
			}

		case "desc", "description":
			if value != "" {
				f.Descriptions = append(f.Descriptions, value)
			}

		case "has":
			switch strings.ToLower(value) {
			case "image":
				yes := true
				f.HasImage = &yes
			case "no-image", "noimage":
				no := false
				f.HasImage = &no
			default:
				return nil, fmt.Errorf("unknown has: term %q, use has:image or has:no-image", value)
			}

		default:
			return nil, fmt.Errorf("unknown query term: %q", token)
		}
	}

	return f, nil
}

// ParseKind resolves the accepted spellings of a collectible kind
func ParseKind(s string) (collectible.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ribbon", "ribbons":
		return collectible.KindRibbons, nil
	case "badge", "badges", "gym_badges", "gym-badges":
		return collectible.KindBadges, nil
	}
	return "", fmt.Errorf("unknown kind: %q, use ribbons or badges", s)
}
