package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/notifier"
)

var (
	resultFile   = flag.String("result-file", "", "Path to check result JSON file (or read from stdin)")
	dryRun       = flag.Bool("dry-run", false, "Print posts without publishing")
	maxPosts     = flag.Int("max-posts", 10, "Maximum number of posts to publish")
	leagueFilter = flag.String("league", "", "Only announce badges from this league")
)

func main() {
	flag.Parse()

	// Read the check result from file or stdin
	var reader io.Reader
	if *resultFile != "" {
		f, err := os.Open(*resultFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening result file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	// Parse JSON produced by check --format json
	var result struct {
		NewRecords []*collectible.Record            `json:"new_records"`
		ByLeague   map[string][]*collectible.Record `json:"by_league"`
	}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	if len(result.NewRecords) == 0 {
		fmt.Println("No new records to announce")
		os.Exit(0)
	}

	// League annotations are not part of the serialized records; restore
	// them from the by_league grouping
	restoreLeagues(result.NewRecords, result.ByLeague)

	records := result.NewRecords
	if *leagueFilter != "" {
		records = filterByLeague(records, *leagueFilter)
	}

	if len(records) > *maxPosts {
		records = records[:*maxPosts]
	}

	if len(records) == 0 {
		fmt.Println("No records match criteria")
		os.Exit(0)
	}

	var n notifier.Notifier
	if *dryRun {
		n = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would announce %d records:\n\n", len(records))
	} else {
		client, err := notifier.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		n = client
	}

	if err := n.Notify(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting announcements: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully posted %d announcements\n", len(records))
	}
}

// restoreLeagues stamps each record with the league it was grouped under
func restoreLeagues(records []*collectible.Record, byLeague map[string][]*collectible.Record) {
	if len(byLeague) == 0 {
		return
	}

	leagues := make(map[string]string)
	for league, grouped := range byLeague {
		for _, rec := range grouped {
			leagues[rec.Name] = league
		}
	}

	for _, rec := range records {
		if league, ok := leagues[rec.Name]; ok {
			rec.League = league
		}
	}
}

// filterByLeague keeps records whose league matches the filter
func filterByLeague(records []*collectible.Record, league string) []*collectible.Record {
	filtered := make([]*collectible.Record, 0)
	for _, rec := range records {
		if strings.EqualFold(rec.League, league) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
