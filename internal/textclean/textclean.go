// Package textclean implements the ordered text-cleanup steps applied to
// scraped badge descriptions. Each step is a pure string transformation so
// individual rules can be tested against literal fixture strings.
package textclean

import (
	"strings"
)

const (
	abilitiesMarker = "Abilities:"
	givenOutPrefix  = "is given out at"
)

// Step is a single pure text transformation
type Step func(string) string

// Apply runs s through each step in order
func Apply(s string, steps ...Step) string {
	for _, step := range steps {
		s = step(s)
	}
	return s
}

// DescriptionSteps returns the cleanup chain for a badge info cell whose
// name resolved to the given value
func DescriptionSteps(name string) []Step {
	return []Step{
		StripNamePrefix(name),
		TruncateAtAbilities,
		CollapseWhitespace,
	}
}

// StripNamePrefix returns a step that removes the badge name from its
// info-cell text: a leading "The <name>" is removed once, otherwise the
// first bare occurrence of the name is removed. Empty names pass through.
func StripNamePrefix(name string) Step {
	return func(s string) string {
		if name == "" {
			return s
		}
		if prefixed := "The " + name; strings.HasPrefix(s, prefixed) {
			return strings.TrimSpace(strings.Replace(s, prefixed, "", 1))
		}
		if strings.Contains(s, name) {
			return strings.TrimSpace(strings.Replace(s, name, "", 1))
		}
		return s
	}
}

// TruncateAtAbilities cuts the trailing ability listing off a badge
// description. The cut applies when the text leads with the gym hand-out
// phrasing or carries the marker anywhere; text before the first marker
// occurrence is kept.
func TruncateAtAbilities(s string) string {
	if !strings.HasPrefix(s, givenOutPrefix) && !strings.Contains(s, abilitiesMarker) {
		return s
	}
	if idx := strings.Index(s, abilitiesMarker); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}

// CollapseWhitespace squeezes internal whitespace runs to single spaces and
// trims the ends
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
