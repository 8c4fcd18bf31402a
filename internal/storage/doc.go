// Package storage provides JSON-based persistence for collectible snapshots.
//
// The storage package manages local snapshot files that track scraped records
// across runs, one file per collectible kind (snapshot_ribbons.json,
// snapshot_gym_badges.json), and writes the scraped output files themselves.
// The default storage location is ~/.local/share/pokecollect/.
package storage
