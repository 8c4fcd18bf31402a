package export

import (
	"strings"
	"testing"

	"github.com/pokecollect/pokecollect/internal/collectible"
)

func strptr(s string) *string {
	return &s
}

func badge(name, league string, imageURL *string, description string) *collectible.Record {
	rec := collectible.NewRecord(name, imageURL, description)
	rec.League = league
	return rec
}

func TestChecklist(t *testing.T) {
	badges := []*collectible.Record{
		badge("Boulder Badge", "Indigo League", strptr("https://pokemon.fandom.com/images/boulderbadge.png"), "is given out at Pewter City Gym."),
		badge("Cascade Badge", "Indigo League", nil, "is given out at Cerulean City Gym."),
		badge("Zephyr Badge", "Johto League", nil, "is given out at Violet City Gym."),
	}
	ribbons := []*collectible.Record{
		collectible.NewRecord("Champion Ribbon", strptr("https://www.serebii.net/games/ribbons/championribbon.png"), "A Ribbon awarded for entering the Hall of Fame."),
	}

	md := Checklist(badges, ribbons)

	// Check document structure
	requiredLines := []string{
		"# Pokémon Collection Checklist",
		"3 gym badges and 1 ribbons to collect.",
		"## Gym Badges",
		"### Indigo League",
		"### Johto League",
		"## Ribbons",
		"- [ ] **Boulder Badge**: is given out at Pewter City Gym. ([image](https://pokemon.fandom.com/images/boulderbadge.png))",
		"- [ ] **Cascade Badge**: is given out at Cerulean City Gym.",
		"- [ ] **Champion Ribbon**: A Ribbon awarded for entering the Hall of Fame.",
	}

	for _, line := range requiredLines {
		if !strings.Contains(md, line) {
			t.Errorf("checklist missing line: %s", line)
		}
	}

	// League metadata is pulled in for known leagues
	if !strings.Contains(md, "Kanto region, Generation 1.") {
		t.Error("checklist missing Indigo League metadata")
	}
	if !strings.Contains(md, "Johto region, Generation 2.") {
		t.Error("checklist missing Johto League metadata")
	}

	// Leagues appear in scrape order
	indigo := strings.Index(md, "### Indigo League")
	johto := strings.Index(md, "### Johto League")
	if indigo > johto {
		t.Error("league sections out of order")
	}

	// Badges come before ribbons
	if strings.Index(md, "## Gym Badges") > strings.Index(md, "## Ribbons") {
		t.Error("gym badges section should precede ribbons")
	}
}

func TestChecklist_Empty(t *testing.T) {
	md := Checklist(nil, nil)

	if md != "" {
		t.Errorf("empty inputs should return empty string, got %q", md)
	}
}

func TestChecklist_RibbonsOnly(t *testing.T) {
	ribbons := []*collectible.Record{
		collectible.NewRecord("Effort Ribbon", nil, "A Ribbon awarded to hard workers."),
	}

	md := Checklist(nil, ribbons)

	if strings.Contains(md, "## Gym Badges") {
		t.Error("should not render an empty gym badges section")
	}
	if !strings.Contains(md, "## Ribbons") {
		t.Error("missing ribbons section")
	}
	if !strings.Contains(md, "0 gym badges and 1 ribbons to collect.") {
		t.Error("missing count line")
	}
}

func TestChecklist_UnknownLeague(t *testing.T) {
	badges := []*collectible.Record{
		badge("Coral-Eye Badge", "Orange League", nil, "is given out at Mikan Island Gym."),
		badge("Mystery Badge", "", nil, "origin unknown."),
	}

	md := Checklist(badges, nil)

	if !strings.Contains(md, "### Orange League") {
		t.Error("unknown league should still get its own section")
	}
	if strings.Contains(md, "Orange region") {
		t.Error("unknown league should not invent metadata")
	}
	if !strings.Contains(md, "### Other Badges") {
		t.Error("unleagued badges should land in Other Badges")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple text", "Simple text"},
		{"Text with *asterisk*", "Text with \\*asterisk\\*"},
		{"Text with _underscore_", "Text with \\_underscore\\_"},
		{"Text with [bracket", "Text with \\[bracket"},
		{"Back\\slash", "Back\\\\slash"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeMarkdown(tt.input)
			if got != tt.expected {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
