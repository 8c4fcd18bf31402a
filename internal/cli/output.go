package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/league"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// CheckResult contains the outcome of a check run
type CheckResult struct {
	CheckedAt  time.Time                        `json:"checked_at"`
	Kinds      []string                         `json:"kinds"`
	NewRecords []*collectible.Record            `json:"new_records"`
	NewCount   int                              `json:"new_count"`
	Changed    []*collectible.RecordChange      `json:"changed,omitempty"`
	ByLeague   map[string][]*collectible.Record `json:"by_league,omitempty"`
}

// ListResult contains snapshot records prepared for display
type ListResult struct {
	Kinds []*KindListing `json:"kinds"`
	Total int            `json:"total"`
}

// KindListing holds the records of one kind
type KindListing struct {
	Kind      collectible.Kind      `json:"kind"`
	Records   []*collectible.Record `json:"records"`
	UpdatedAt string                `json:"updated_at,omitempty"`
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteListOutput writes the list result in the specified format
func WriteListOutput(w io.Writer, result *ListResult, format OutputFormat, detailed bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeListText(w, result, detailed)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs a result as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs a check result as human-readable text
func writeText(w io.Writer, result *CheckResult, verbose bool) error {
	if result.NewCount == 0 {
		fmt.Fprintln(w, "No new records found.")
		writeChanged(w, result.Changed, verbose)
		return nil
	}

	// Badges grouped by league
	if len(result.ByLeague) > 0 {
		leagues := make([]string, 0, len(result.ByLeague))
		for name := range result.ByLeague {
			leagues = append(leagues, name)
		}
		sort.Strings(leagues)

		for _, name := range leagues {
			records := result.ByLeague[name]
			if len(records) == 0 {
				continue
			}

			fmt.Fprintf(w, "\n%s (%d new):\n", name, len(records))
			for _, rec := range records {
				writeNewRecord(w, "  ", rec, verbose)
			}
		}
	}

	// Records outside any league group, typically ribbons
	wroteGap := false
	for _, rec := range result.NewRecords {
		if rec.League != "" {
			continue
		}
		if !wroteGap {
			fmt.Fprintln(w)
			wroteGap = true
		}
		writeNewRecord(w, "", rec, verbose)
	}

	fmt.Fprintf(w, "\nTotal: %d new records\n", result.NewCount)
	writeChanged(w, result.Changed, verbose)

	return nil
}

// writeChanged summarizes changed records under the main output
func writeChanged(w io.Writer, changes []*collectible.RecordChange, verbose bool) {
	if len(changes) == 0 {
		return
	}

	fmt.Fprintf(w, "\nChanged: %d\n", len(changes))
	for _, ch := range changes {
		fmt.Fprintf(w, "  %s: %s changed\n", ch.Name, ch.ChangeType)
		if verbose {
			fmt.Fprintf(w, "       was: %s\n", ch.OldValue)
			fmt.Fprintf(w, "       now: %s\n", ch.NewValue)
		}
	}
}

// writeNewRecord prints one new record line with optional verbose detail
func writeNewRecord(w io.Writer, indent string, rec *collectible.Record, verbose bool) {
	line := rec.Name
	if rec.Description != "" {
		line += ": " + rec.Description
	}
	fmt.Fprintf(w, "%sNEW: %s\n", indent, line)

	if verbose {
		fmt.Fprintf(w, "%s     ID: %s\n", indent, rec.ID())
		if rec.ImageURL != nil {
			fmt.Fprintf(w, "%s     Image: %s\n", indent, *rec.ImageURL)
		}
	}
}

// writeListText outputs the listing grouped by kind, and by league for
// badges
func writeListText(w io.Writer, result *ListResult, detailed bool) error {
	if result.Total == 0 {
		fmt.Fprintln(w, "No collectibles found.")
		return nil
	}

	for _, listing := range result.Kinds {
		if len(listing.Records) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d):\n", kindHeading(listing.Kind), len(listing.Records))

		if listing.Kind == collectible.KindBadges {
			writeBadgeGroups(w, listing.Records, detailed)
			continue
		}

		for _, rec := range listing.Records {
			writeRecordLine(w, "  ", rec, detailed)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d collectibles\n", result.Total)

	return nil
}

// writeBadgeGroups prints badge records under their league headings. The
// records must already be sorted by league.
func writeBadgeGroups(w io.Writer, records []*collectible.Record, detailed bool) {
	var lastLeague string
	started := false

	for _, rec := range records {
		if !started || rec.League != lastLeague {
			fmt.Fprintf(w, "\n%s\n", leagueHeading(rec.League, detailed))
			lastLeague = rec.League
			started = true
		}
		writeRecordLine(w, "  ", rec, detailed)
	}
}

// leagueHeading renders a league group heading, with region metadata when
// detailed output is requested
func leagueHeading(name string, detailed bool) string {
	if name == "" {
		return "Other Badges:"
	}

	if detailed {
		if info := league.Lookup(name); info != nil {
			return fmt.Sprintf("%s (%s, Generation %d):", name, info.Region, info.Generation)
		}
	}

	return name + ":"
}

// writeRecordLine prints one record with optional detail lines
func writeRecordLine(w io.Writer, indent string, rec *collectible.Record, detailed bool) {
	line := rec.Name
	if rec.Description != "" {
		line += ": " + rec.Description
	}
	fmt.Fprintf(w, "%s%s\n", indent, line)

	if detailed && rec.ImageURL != nil {
		fmt.Fprintf(w, "%s     Image: %s\n", indent, *rec.ImageURL)
	}
}

// kindHeading returns the display heading for a kind
func kindHeading(kind collectible.Kind) string {
	switch kind {
	case collectible.KindBadges:
		return "Gym Badges"
	case collectible.KindRibbons:
		return "Ribbons"
	}
	return string(kind)
}
