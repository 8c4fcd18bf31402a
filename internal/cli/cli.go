package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/config"
	"github.com/pokecollect/pokecollect/internal/logger"
	"github.com/pokecollect/pokecollect/internal/scraper"
	"github.com/pokecollect/pokecollect/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNewRecords = 2
)

var (
	flagConfigFile string
	flagDataDir    string
	flagOutputDir  string
	flagFormat     string
	flagVerbose    bool

	flagKind     string
	flagLeague   string
	flagQuery    string
	flagRefresh  bool
	flagAnnounce bool
	flagDryRun   bool
	flagDetailed bool
	flagOut      string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokecollect",
		Short: "Scrape Pokémon gym badge and ribbon data",
		Long: `A CLI tool that scrapes Pokémon gym badge and ribbon lists.
Run without a subcommand to fetch both lists, print them as JSON and write
pokemon_gym_badges.json and pokemon_ribbons.json to the output directory.`,
		RunE: runScrape,
	}

	// Shared flags, inherited by every subcommand
	cmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "Config file path (default ~/.pokecollect/config.json)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.local/share/pokecollect", "Data directory for snapshots")
	cmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", ".", "Directory for scraped output files")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// runScrape is the root command logic: fetch both lists, print them and
// write the output files
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := applyConfig(cmd)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Output directory: %s\n", flagOutputDir)
	}

	sc := newScraper(cfg)

	// Badges first, then ribbons; a failed scrape of one list never blocks
	// the other
	if err := saveRecords(os.Stdout, flagOutputDir, collectible.KindBadges, sc.Badges()); err != nil {
		return err
	}
	if err := saveRecords(os.Stdout, flagOutputDir, collectible.KindRibbons, sc.Ribbons()); err != nil {
		return err
	}

	logMetrics()

	return nil
}

// saveRecords prints the records as JSON and writes them to the kind's
// output file. An empty record set prints a notice and leaves the file
// untouched.
func saveRecords(w io.Writer, outputDir string, kind collectible.Kind, records []*collectible.Record) error {
	label := kind.Label()
	if len(records) == 0 {
		fmt.Fprintf(w, "No %s data was scraped.\n", label)
		return nil
	}

	data, err := collectible.MarshalRecords(records)
	if err != nil {
		return fmt.Errorf("encoding %s records: %w", label, err)
	}
	fmt.Fprintln(w, string(data))

	path := filepath.Join(outputDir, kind.OutputFilename())
	if err := storage.WriteRecords(path, records); err != nil {
		return fmt.Errorf("saving %s records: %w", label, err)
	}

	fmt.Fprintf(w, "\n%s data saved to %s\n", capitalize(label), path)

	return nil
}

// applyConfig loads the config file and fills in every shared flag the user
// did not set on the command line, then installs the default logger at the
// configured level
func applyConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("output-dir") {
		flagOutputDir = cfg.OutputDir
	}
	if !flags.Changed("data-dir") {
		flagDataDir = cfg.DataDir
	}
	if !flags.Changed("format") {
		flagFormat = cfg.Format
	}
	if !flags.Changed("dry-run") {
		flagDryRun = cfg.AnnounceDryRun
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stdout))

	return cfg, nil
}

// newScraper builds the scraper with any configured user agent override
func newScraper(cfg *config.Config) *scraper.Scraper {
	sc := scraper.New()
	sc.SetUserAgent(cfg.UserAgent)
	return sc
}

// logMetrics emits the collected scrape metrics, visible with --verbose
func logMetrics() {
	logger.Debug("run metrics", logger.Fields(logger.GetMetricsSnapshot()))
}

// capitalize upper-cases the first letter of a kind label for messages
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
