package league

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantRegion string
		wantNil    bool
	}{
		{
			name:       "Exact heading - Indigo League",
			input:      "Indigo League",
			wantName:   "Indigo League",
			wantRegion: "Kanto",
			wantNil:    false,
		},
		{
			name:       "Bare name - Johto",
			input:      "Johto",
			wantName:   "Johto League",
			wantRegion: "Johto",
			wantNil:    false,
		},
		{
			name:       "Case insensitive - PALDEA LEAGUE",
			input:      "PALDEA LEAGUE",
			wantName:   "Paldea League",
			wantRegion: "Paldea",
			wantNil:    false,
		},
		{
			name:       "Region suffix stripped",
			input:      "Unova region",
			wantName:   "Unova League",
			wantRegion: "Unova",
			wantNil:    false,
		},
		{
			name:       "Surrounding whitespace",
			input:      "  Galar League  ",
			wantName:   "Galar League",
			wantRegion: "Galar",
			wantNil:    false,
		},
		{
			name:    "Unknown league",
			input:   "Orre League",
			wantNil: true,
		},
		{
			name:    "Empty input",
			input:   "",
			wantNil: true,
		},
		{
			name:    "Anime heading does not resolve",
			input:   "Anime exclusive badges",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.input)

			if tt.wantNil {
				if got != nil {
					t.Errorf("Lookup(%q) = %v, want nil", tt.input, got)
				}
				return
			}

			if got == nil {
				t.Fatalf("Lookup(%q) = nil, want league info", tt.input)
			}

			if got.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.input, got.Name, tt.wantName)
			}
			if got.Region != tt.wantRegion {
				t.Errorf("Lookup(%q).Region = %q, want %q", tt.input, got.Region, tt.wantRegion)
			}
		})
	}
}

func TestLookup_Generations(t *testing.T) {
	for name, want := range map[string]int{
		"Indigo League": 1,
		"Hoenn League":  3,
		"Sinnoh League": 4,
		"Kalos League":  6,
		"Paldea League": 9,
	} {
		info := Lookup(name)
		if info == nil {
			t.Errorf("Lookup(%q) = nil", name)
			continue
		}
		if info.Generation != want {
			t.Errorf("Lookup(%q).Generation = %d, want %d", name, info.Generation, want)
		}
	}
}
