package collectible

import (
	"sort"
	"strings"
	"time"
)

// Snapshot represents the known records of one kind at a point in time
type Snapshot struct {
	Records     map[string]*Record `json:"records"` // keyed by Record.ID()
	StableIndex map[string]string  `json:"stable_index"`
	Leagues     map[string]string  `json:"leagues,omitempty"` // record ID → league heading, badges only
	ChangeLog   []*RecordChange    `json:"change_log"`
	UpdatedAt   string             `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Records:     make(map[string]*Record),
		StableIndex: make(map[string]string),
		Leagues:     make(map[string]string),
		ChangeLog:   make([]*RecordChange, 0),
	}
}

// CreateSnapshot creates a snapshot from a list of records
func CreateSnapshot(records []*Record, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt

	for _, rec := range records {
		id := rec.ID()
		snap.Records[id] = rec
		snap.StableIndex[rec.StableKey()] = id
		if rec.League != "" {
			snap.Leagues[id] = rec.League
		}
	}

	return snap
}

// All returns the snapshot's records with league annotations restored.
// Order is unspecified; callers sort for display.
func (s *Snapshot) All() []*Record {
	records := make([]*Record, 0, len(s.Records))
	for id, rec := range s.Records {
		if league, ok := s.Leagues[id]; ok {
			rec.League = league
		}
		records = append(records, rec)
	}
	return records
}

// DiffResult contains the results of comparing a scrape against a snapshot
type DiffResult struct {
	NewRecords []*Record
	Changed    []*RecordChange
	Leagues    map[string][]*Record // new records grouped by league, badges only
}

// Diff compares current records against a previous snapshot and returns new
// and changed records
func Diff(previous *Snapshot, current []*Record, leagueFilter string) *DiffResult {
	result := &DiffResult{
		NewRecords: make([]*Record, 0),
		Changed:    make([]*RecordChange, 0),
		Leagues:    make(map[string][]*Record),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	for _, rec := range current {
		// Apply league filter
		if leagueFilter != "" && !strings.EqualFold(rec.League, leagueFilter) {
			continue
		}

		id := rec.ID()
		if _, exists := previous.Records[id]; exists {
			continue
		}

		// Same stable key with a different content ID means the record
		// changed rather than appeared
		if prevID, exists := previous.StableIndex[rec.StableKey()]; exists {
			result.Changed = append(result.Changed, DetectChanges(previous.Records[prevID], rec)...)
			continue
		}

		result.NewRecords = append(result.NewRecords, rec)

		if rec.League != "" {
			if result.Leagues[rec.League] == nil {
				result.Leagues[rec.League] = make([]*Record, 0)
			}
			result.Leagues[rec.League] = append(result.Leagues[rec.League], rec)
		}
	}

	// Sort new records for consistent output
	sort.Slice(result.NewRecords, func(i, j int) bool {
		if result.NewRecords[i].League != result.NewRecords[j].League {
			return result.NewRecords[i].League < result.NewRecords[j].League
		}
		return result.NewRecords[i].Name < result.NewRecords[j].Name
	})

	// Sort within each league group
	for league := range result.Leagues {
		sort.Slice(result.Leagues[league], func(i, j int) bool {
			return result.Leagues[league][i].Name < result.Leagues[league][j].Name
		})
	}

	return result
}

// RecordChange represents a change detected in a record
type RecordChange struct {
	RecordID   string    `json:"record_id"`
	StableKey  string    `json:"stable_key"`
	Name       string    `json:"name"`
	ChangeType string    `json:"change_type"` // "description", "image", "new"
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	DetectedAt time.Time `json:"detected_at"`
}

// DetectChanges compares two records with the same stable key and returns
// detected changes
func DetectChanges(previous, current *Record) []*RecordChange {
	var changes []*RecordChange

	// If no previous record, this is a new record
	if previous == nil {
		return []*RecordChange{
			{
				RecordID:   current.ID(),
				StableKey:  current.StableKey(),
				Name:       current.Name,
				ChangeType: "new",
				OldValue:   "",
				NewValue:   current.Name,
				DetectedAt: time.Now().UTC(),
			},
		}
	}

	if previous.Description != current.Description {
		changes = append(changes, &RecordChange{
			RecordID:   current.ID(),
			StableKey:  current.StableKey(),
			Name:       current.Name,
			ChangeType: "description",
			OldValue:   previous.Description,
			NewValue:   current.Description,
			DetectedAt: time.Now().UTC(),
		})
	}

	if imageValue(previous) != imageValue(current) {
		changes = append(changes, &RecordChange{
			RecordID:   current.ID(),
			StableKey:  current.StableKey(),
			Name:       current.Name,
			ChangeType: "image",
			OldValue:   imageValue(previous),
			NewValue:   imageValue(current),
			DetectedAt: time.Now().UTC(),
		})
	}

	return changes
}

// CompareSnapshots compares two record sets by stable key and returns all
// detected changes
func CompareSnapshots(previousRecords, currentRecords map[string]*Record, previousIndex, currentIndex map[string]string) []*RecordChange {
	var allChanges []*RecordChange

	for stableKey, currentID := range currentIndex {
		currentRecord := currentRecords[currentID]

		if previousID, exists := previousIndex[stableKey]; exists {
			changes := DetectChanges(previousRecords[previousID], currentRecord)
			allChanges = append(allChanges, changes...)
		} else {
			changes := DetectChanges(nil, currentRecord)
			allChanges = append(allChanges, changes...)
		}
	}

	return allChanges
}

func imageValue(r *Record) string {
	if r.ImageURL == nil {
		return ""
	}
	return *r.ImageURL
}
