package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/filter"
	"github.com/pokecollect/pokecollect/internal/notifier"
	"github.com/pokecollect/pokecollect/internal/scraper"
	"github.com/pokecollect/pokecollect/internal/storage"
	"github.com/spf13/cobra"
)

// maxChangeLog bounds the change history carried in each snapshot file
const maxChangeLog = 100

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check for newly tracked collectibles",
		Long: `Fetches the current collectible lists, compares them against the stored
snapshots and reports records not seen before. Exits with status 2 when new
records were found.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagKind, "kind", "all", "Collectible kind: badges, ribbons or all")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagLeague, "league", "", "Only report badges from this league heading, e.g. 'Indigo League'")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh snapshots without reporting new records")
	cmd.Flags().BoolVar(&flagAnnounce, "announce", false, "Announce new records through the notifier")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print announcements instead of posting them")

	return cmd
}

// runCheck is the check subcommand logic
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := applyConfig(cmd)
	if err != nil {
		return err
	}

	kinds, err := selectKinds(flagKind)
	if err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := newScraper(cfg)

	result := &CheckResult{
		CheckedAt:  time.Now().UTC(),
		Kinds:      make([]string, 0, len(kinds)),
		NewRecords: make([]*collectible.Record, 0),
		ByLeague:   make(map[string][]*collectible.Record),
	}

	for _, kind := range kinds {
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Fetching %s from %s\n", kind.Label(), sourceURL(kind))
		}

		// Scrape failures are real errors here, unlike the fail-closed
		// root command
		current, err := fetchKind(sc, kind)
		if err != nil {
			return fmt.Errorf("fetching %s records: %w", kind.Label(), err)
		}

		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Fetched %d %s records\n", len(current), kind.Label())
		}

		var previous *collectible.Snapshot
		if !flagRefresh {
			previous, err = store.LoadSnapshot(kind)
			if err != nil {
				return fmt.Errorf("loading %s snapshot: %w", kind.Label(), err)
			}
		}

		diff := collectible.Diff(previous, current, flagLeague)

		if err := saveSnapshot(store, kind, current, previous, diff); err != nil {
			return err
		}

		result.Kinds = append(result.Kinds, string(kind))
		result.NewRecords = append(result.NewRecords, diff.NewRecords...)
		result.Changed = append(result.Changed, diff.Changed...)
		for league, records := range diff.Leagues {
			result.ByLeague[league] = append(result.ByLeague[league], records...)
		}
	}
	result.NewCount = len(result.NewRecords)

	logMetrics()

	// In refresh mode, don't report new records
	if flagRefresh {
		if format == FormatText {
			fmt.Println("Snapshots refreshed successfully.")
		} else {
			result.NewRecords = nil
			result.NewCount = 0
			result.ByLeague = nil
			if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		os.Exit(ExitSuccess)
		return nil
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagAnnounce && result.NewCount > 0 {
		if err := announceRecords(result.NewRecords); err != nil {
			return err
		}
	}

	// Set exit code based on whether new records were found
	if result.NewCount > 0 {
		os.Exit(ExitNewRecords)
	}
	os.Exit(ExitSuccess)

	return nil
}

// saveSnapshot persists the refreshed snapshot, carrying the bounded change
// history forward
func saveSnapshot(store *storage.Storage, kind collectible.Kind, current []*collectible.Record, previous *collectible.Snapshot, diff *collectible.DiffResult) error {
	snap := collectible.CreateSnapshot(current, time.Now().UTC().Format(time.RFC3339))

	if previous != nil {
		changeLog := append(previous.ChangeLog, diff.Changed...)
		if len(changeLog) > maxChangeLog {
			changeLog = changeLog[len(changeLog)-maxChangeLog:]
		}
		snap.ChangeLog = changeLog
	}

	if err := store.SaveSnapshot(snap, kind); err != nil {
		return fmt.Errorf("saving %s snapshot: %w", kind.Label(), err)
	}

	return nil
}

// announceRecords sends new records through the configured notifier
func announceRecords(records []*collectible.Record) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
		fmt.Printf("\nDRY RUN MODE - Would announce %d records:\n\n", len(records))
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return fmt.Errorf("initializing notifier: %w", err)
		}
		n = tw
	}

	if err := n.Notify(records); err != nil {
		return fmt.Errorf("announcing new records: %w", err)
	}

	return nil
}

// selectKinds resolves the --kind flag into the kinds to process
func selectKinds(s string) ([]collectible.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return collectible.Kinds, nil
	}

	kind, err := filter.ParseKind(s)
	if err != nil {
		return nil, err
	}
	return []collectible.Kind{kind}, nil
}

// fetchKind runs the error-returning fetcher for a kind
func fetchKind(sc *scraper.Scraper, kind collectible.Kind) ([]*collectible.Record, error) {
	switch kind {
	case collectible.KindBadges:
		return sc.FetchBadges()
	case collectible.KindRibbons:
		return sc.FetchRibbons()
	}
	return nil, fmt.Errorf("unknown kind: %s", kind)
}

// sourceURL returns the page a kind is scraped from
func sourceURL(kind collectible.Kind) string {
	if kind == collectible.KindBadges {
		return scraper.BadgesURL
	}
	return scraper.RibbonsURL
}
