package export

import (
	"fmt"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/league"
)

// Checklist generates a markdown collection checklist for badge and ribbon
// records. Badges are grouped by league section with league metadata where
// known; ribbons are listed flat. Returns an empty string when there are no
// records at all.
func Checklist(badges, ribbons []*collectible.Record) string {
	if len(badges) == 0 && len(ribbons) == 0 {
		return ""
	}

	var md strings.Builder

	md.WriteString("# Pokémon Collection Checklist\n\n")
	md.WriteString(fmt.Sprintf("%d gym badges and %d ribbons to collect.\n", len(badges), len(ribbons)))

	if len(badges) > 0 {
		md.WriteString("\n## Gym Badges\n")

		for _, section := range groupByLeague(badges) {
			md.WriteString(fmt.Sprintf("\n### %s\n\n", section.title))

			if info := league.Lookup(section.title); info != nil {
				md.WriteString(fmt.Sprintf("%s region, Generation %d. Games: %s.\n\n", info.Region, info.Generation, info.Games))
			}

			for _, rec := range section.records {
				md.WriteString(checklistItem(rec))
			}
		}
	}

	if len(ribbons) > 0 {
		md.WriteString("\n## Ribbons\n\n")
		for _, rec := range ribbons {
			md.WriteString(checklistItem(rec))
		}
	}

	return md.String()
}

// leagueSection holds one league's badges in scrape order
type leagueSection struct {
	title   string
	records []*collectible.Record
}

// groupByLeague buckets badges by their league heading, preserving the order
// leagues were first seen. Badges without a league land in "Other Badges".
func groupByLeague(badges []*collectible.Record) []leagueSection {
	var sections []leagueSection
	index := make(map[string]int)

	for _, rec := range badges {
		title := rec.League
		if title == "" {
			title = "Other Badges"
		}

		i, seen := index[title]
		if !seen {
			i = len(sections)
			index[title] = i
			sections = append(sections, leagueSection{title: title})
		}
		sections[i].records = append(sections[i].records, rec)
	}

	return sections
}

// checklistItem renders one record as an unchecked markdown task line
func checklistItem(rec *collectible.Record) string {
	var item strings.Builder

	item.WriteString(fmt.Sprintf("- [ ] **%s**", escapeMarkdown(rec.Name)))
	if rec.Description != "" {
		item.WriteString(fmt.Sprintf(": %s", escapeMarkdown(rec.Description)))
	}
	if rec.ImageURL != nil && *rec.ImageURL != "" {
		item.WriteString(fmt.Sprintf(" ([image](%s))", *rec.ImageURL))
	}
	item.WriteString("\n")

	return item.String()
}

// escapeMarkdown escapes characters that would change markdown structure
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	return s
}
