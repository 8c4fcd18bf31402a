package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pokecollect/pokecollect/internal/collectible"
)

// Storage handles persistence of collectible snapshots and scraped output files
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// getSnapshotPath returns the path to the snapshot file for a kind
func (s *Storage) getSnapshotPath(kind collectible.Kind) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", kind))
}

// LoadSnapshot loads the snapshot for a kind from disk
func (s *Storage) LoadSnapshot(kind collectible.Kind) (*collectible.Snapshot, error) {
	path := s.getSnapshotPath(kind)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No previous snapshot, return empty one
			return collectible.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot collectible.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	// Ensure maps are initialized
	if snapshot.Records == nil {
		snapshot.Records = make(map[string]*collectible.Record)
	}
	if snapshot.StableIndex == nil {
		snapshot.StableIndex = make(map[string]string)
		for id, rec := range snapshot.Records {
			snapshot.StableIndex[rec.StableKey()] = id
		}
	}

	return &snapshot, nil
}

// SaveSnapshot saves the snapshot for a kind to disk
func (s *Storage) SaveSnapshot(snapshot *collectible.Snapshot, kind collectible.Kind) error {
	path := s.getSnapshotPath(kind)

	// Set updated timestamp
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// CreateSnapshotFromRecords creates and saves a snapshot from a list of records
func (s *Storage) CreateSnapshotFromRecords(records []*collectible.Record, kind collectible.Kind) error {
	snapshot := collectible.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, kind)
}

// WriteRecords writes records to path in the scraped output format. It is
// independent of any Storage instance so the scrape driver can write output
// files without touching the snapshot directory.
func WriteRecords(path string, records []*collectible.Record) error {
	data, err := collectible.MarshalRecords(records)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	return nil
}

// GetRecordByID retrieves a record by ID from the snapshot for a kind
func (s *Storage) GetRecordByID(recordID string, kind collectible.Kind) (*collectible.Record, error) {
	snapshot, err := s.LoadSnapshot(kind)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if rec, exists := snapshot.Records[recordID]; exists {
		return rec, nil
	}

	return nil, fmt.Errorf("record not found: %s", recordID)
}
