package cli

import (
	"fmt"
	"os"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/export"
	"github.com/pokecollect/pokecollect/internal/storage"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a Markdown collection checklist",
		Long: `Generates a Markdown checklist of every tracked collectible from the
local snapshots and writes it to a file.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagOut, "out", "pokecollect_checklist.md", "Output file for the checklist")

	return cmd
}

// runExport is the export subcommand logic
func runExport(cmd *cobra.Command, args []string) error {
	if _, err := applyConfig(cmd); err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	badgeSnap, err := store.LoadSnapshot(collectible.KindBadges)
	if err != nil {
		return fmt.Errorf("loading gym badge snapshot: %w", err)
	}
	ribbonSnap, err := store.LoadSnapshot(collectible.KindRibbons)
	if err != nil {
		return fmt.Errorf("loading ribbon snapshot: %w", err)
	}

	badges := badgeSnap.All()
	sortRecords(badges, SortByLeague)

	ribbons := ribbonSnap.All()
	sortRecords(ribbons, SortByName)

	content := export.Checklist(badges, ribbons)
	if content == "" {
		return fmt.Errorf("no snapshot data to export, run a scrape or check first")
	}

	if err := os.WriteFile(flagOut, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing checklist: %w", err)
	}

	fmt.Printf("Checklist with %d gym badges and %d ribbons written to %s\n", len(badges), len(ribbons), flagOut)

	return nil
}
