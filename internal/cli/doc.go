// Package cli implements the command-line interface for pokecollect.
//
// The cli package provides the Cobra-based CLI. The root command scrapes
// both collectible lists and writes their JSON output files; subcommands
// cover snapshot-based change checking (check), filtered listing from local
// snapshots (list) and Markdown checklist export (export). It coordinates
// the scraper, storage, filter, league and export packages.
package cli
