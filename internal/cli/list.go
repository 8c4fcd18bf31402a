package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/filter"
	"github.com/pokecollect/pokecollect/internal/storage"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked collectibles from local snapshots",
		Long: `Lists collectibles from the locally stored snapshots without touching the
network. Run the root command or check first to populate them. Records can
be narrowed with flags or the compact query syntax, e.g.
'kind:badges league:kanto boulder has:image'.`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&flagKind, "kind", "all", "Collectible kind: badges, ribbons or all")
	cmd.Flags().StringVar(&flagLeague, "league", "", "Only badges whose league matches this term")
	cmd.Flags().StringVar(&flagQuery, "query", "", "Compact filter query")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagDetailed, "detailed", false, "Include league metadata and image URLs")

	return cmd
}

// runList is the list subcommand logic
func runList(cmd *cobra.Command, args []string) error {
	if _, err := applyConfig(cmd); err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	f, err := buildListFilter()
	if err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	result := &ListResult{
		Kinds: make([]*KindListing, 0, len(collectible.Kinds)),
	}

	for _, kind := range collectible.Kinds {
		if !f.MatchesKind(kind) {
			continue
		}

		snap, err := store.LoadSnapshot(kind)
		if err != nil {
			return fmt.Errorf("loading %s snapshot: %w", kind.Label(), err)
		}

		records := f.Apply(kind, snap.All())
		if kind == collectible.KindBadges {
			sortRecords(records, SortByLeague)
		} else {
			sortRecords(records, SortByName)
		}

		result.Kinds = append(result.Kinds, &KindListing{
			Kind:      kind,
			Records:   records,
			UpdatedAt: snap.UpdatedAt,
		})
		result.Total += len(records)
	}

	if flagVerbose && !f.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Active filters: %s\n", f.String())
	}

	return WriteListOutput(os.Stdout, result, format, flagDetailed)
}

// buildListFilter merges the simple flags and the compact query into one
// filter
func buildListFilter() (*filter.Filter, error) {
	f, err := filter.ParseQuery(flagQuery)
	if err != nil {
		return nil, err
	}

	kindArg := strings.TrimSpace(flagKind)
	if kindArg != "" && !strings.EqualFold(kindArg, "all") {
		kind, err := filter.ParseKind(kindArg)
		if err != nil {
			return nil, err
		}
		f.Kinds = append(f.Kinds, kind)
	}

	if flagLeague != "" {
		f.Leagues = append(f.Leagues, flagLeague)
	}

	return f, nil
}
