package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pokecollect/pokecollect/internal/collectible"
)

func strptr(s string) *string {
	return &s
}

func TestGetRecordByID(t *testing.T) {
	// Create a temporary directory for test snapshots
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create storage instance
	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	// Test records
	boulder := collectible.NewRecord("Boulder Badge", strptr("https://pokemon.fandom.com/images/boulderbadge.png"), "is given out at Pewter City Gym.")
	cascade := collectible.NewRecord("Cascade Badge", strptr("https://pokemon.fandom.com/images/cascadebadge.png"), "is given out at Cerulean City Gym.")

	tests := []struct {
		name          string
		setup         func() // Setup function to create snapshots
		recordID      string
		wantRecord    *collectible.Record
		wantErr       bool
		wantErrString string
	}{
		{
			name: "Successfully retrieve record from snapshot",
			setup: func() {
				snapshot := collectible.CreateSnapshot([]*collectible.Record{boulder, cascade}, time.Now().Format(time.RFC3339))
				if err := storage.SaveSnapshot(snapshot, collectible.KindBadges); err != nil {
					t.Fatalf("Failed to save snapshot: %v", err)
				}
			},
			recordID:   boulder.ID(),
			wantRecord: boulder,
			wantErr:    false,
		},
		{
			name: "Retrieve different record from same snapshot",
			setup: func() {
				// Snapshot already exists from previous test
			},
			recordID:   cascade.ID(),
			wantRecord: cascade,
			wantErr:    false,
		},
		{
			name: "Record not found in snapshot",
			setup: func() {
				// Snapshot exists but doesn't contain this ID
			},
			recordID:      "nonexistent-id",
			wantRecord:    nil,
			wantErr:       true,
			wantErrString: "record not found: nonexistent-id",
		},
		{
			name: "Empty snapshot",
			setup: func() {
				// Create a new empty snapshot, overwriting previous
				snapshot := collectible.CreateSnapshot([]*collectible.Record{}, time.Now().Format(time.RFC3339))
				if err := storage.SaveSnapshot(snapshot, collectible.KindBadges); err != nil {
					t.Fatalf("Failed to save empty snapshot: %v", err)
				}
			},
			recordID:      boulder.ID(),
			wantRecord:    nil,
			wantErr:       true,
			wantErrString: "record not found: " + boulder.ID(),
		},
		{
			name: "No snapshot file exists",
			setup: func() {
				os.RemoveAll(filepath.Join(tmpDir, "snapshot_gym_badges.json"))
			},
			recordID:      boulder.ID(),
			wantRecord:    nil,
			wantErr:       true,
			wantErrString: "record not found: " + boulder.ID(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			got, err := storage.GetRecordByID(tt.recordID, collectible.KindBadges)

			// Check error
			if (err != nil) != tt.wantErr {
				t.Errorf("GetRecordByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr && err != nil {
				if tt.wantErrString != "" && err.Error() != tt.wantErrString {
					t.Errorf("GetRecordByID() error = %q, want %q", err.Error(), tt.wantErrString)
				}
				return
			}

			// Check record
			if !recordsEqual(got, tt.wantRecord) {
				t.Errorf("GetRecordByID() = %+v, want %+v", got, tt.wantRecord)
			}
		})
	}
}

// recordsEqual compares two records for equality (ignoring the league, which
// snapshots persist separately)
func recordsEqual(a, b *collectible.Record) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if (a.ImageURL == nil) != (b.ImageURL == nil) {
		return false
	}
	if a.ImageURL != nil && *a.ImageURL != *b.ImageURL {
		return false
	}
	return a.Name == b.Name && a.Description == b.Description
}

func TestLoadSnapshot_Missing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	snapshot, err := storage.LoadSnapshot(collectible.KindRibbons)
	if err != nil {
		t.Fatalf("LoadSnapshot() unexpected error: %v", err)
	}

	if snapshot == nil {
		t.Fatal("LoadSnapshot() returned nil snapshot")
	}
	if snapshot.Records == nil {
		t.Error("snapshot Records map not initialized")
	}
	if len(snapshot.Records) != 0 {
		t.Errorf("expected empty snapshot, got %d records", len(snapshot.Records))
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	boulder := collectible.NewRecord("Boulder Badge", strptr("https://pokemon.fandom.com/images/boulderbadge.png"), "is given out at Pewter City Gym.")
	boulder.League = "Indigo League"

	if err := storage.CreateSnapshotFromRecords([]*collectible.Record{boulder}, collectible.KindBadges); err != nil {
		t.Fatalf("CreateSnapshotFromRecords() error: %v", err)
	}

	loaded, err := storage.LoadSnapshot(collectible.KindBadges)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	if len(loaded.Records) != 1 {
		t.Fatalf("expected 1 record in loaded snapshot, got %d", len(loaded.Records))
	}
	if loaded.UpdatedAt == "" {
		t.Error("snapshot UpdatedAt not set on save")
	}

	// All() restores leagues from the snapshot's side table
	records := loaded.All()
	if len(records) != 1 {
		t.Fatalf("expected 1 record from All(), got %d", len(records))
	}
	if records[0].League != "Indigo League" {
		t.Errorf("league = %q, want 'Indigo League' after reload", records[0].League)
	}

	// Stable index survives the round trip
	if _, ok := loaded.StableIndex[boulder.StableKey()]; !ok {
		t.Error("stable index missing entry after reload")
	}
}

func TestLoadSnapshot_RebuildsStableIndex(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	storage, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	// Snapshot written by hand without a stable index
	rec := collectible.NewRecord("Effort Ribbon", nil, "A Ribbon awarded to hard workers.")
	raw := `{"records":{"` + rec.ID() + `":{"name":"Effort Ribbon","image_url":null,"description":"A Ribbon awarded to hard workers."}},"change_log":null,"updated_at":"2026-08-24T00:00:00Z"}`

	path := filepath.Join(tmpDir, "snapshot_ribbons.json")
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write snapshot file: %v", err)
	}

	loaded, err := storage.LoadSnapshot(collectible.KindRibbons)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	id, ok := loaded.StableIndex[rec.StableKey()]
	if !ok {
		t.Fatal("stable index not rebuilt from records")
	}
	if id != rec.ID() {
		t.Errorf("stable index points at %q, want %q", id, rec.ID())
	}
}

func TestWriteRecords(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	records := []*collectible.Record{
		collectible.NewRecord("Boulder Badge", strptr("https://pokemon.fandom.com/images/boulderbadge.png"), "is given out at Pewter City Gym."),
		collectible.NewRecord("Alert Ribbon", nil, "A Ribbon for recalling an event that makes you shiver."),
	}

	path := filepath.Join(tmpDir, "pokemon_gym_badges.json")
	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	content := string(data)
	if strings.HasSuffix(content, "\n") {
		t.Error("output file should not end with a trailing newline")
	}
	if !strings.Contains(content, `"name": "Boulder Badge"`) {
		t.Errorf("output missing record name, got:\n%s", content)
	}
	if !strings.Contains(content, `"image_url": null`) {
		t.Errorf("output missing null image URL, got:\n%s", content)
	}

	// Round-trips as a flat list of three-key objects
	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 decoded records, got %d", len(decoded))
	}
	for i, obj := range decoded {
		if len(obj) != 3 {
			t.Errorf("record %d has %d keys, want 3", i, len(obj))
		}
		for _, key := range []string{"name", "image_url", "description"} {
			if _, ok := obj[key]; !ok {
				t.Errorf("record %d missing key %q", i, key)
			}
		}
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	// Point HOME at a temp dir so the expansion is observable
	tmpDir, err := os.MkdirTemp("", "storage-home-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Setenv("HOME", tmpDir)

	storage, err := New("~/.local/share/pokecollect")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := filepath.Join(tmpDir, ".local", "share", "pokecollect")
	if storage.dataDir != want {
		t.Errorf("dataDir = %q, want %q", storage.dataDir, want)
	}

	if _, err := os.Stat(want); err != nil {
		t.Errorf("data directory was not created: %v", err)
	}
}
