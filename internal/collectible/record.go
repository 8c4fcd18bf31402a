package collectible

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a collectible category
type Kind string

const (
	KindRibbons Kind = "ribbons"
	KindBadges  Kind = "gym_badges"
)

// Kinds lists all known collectible categories in scrape order
var Kinds = []Kind{KindBadges, KindRibbons}

// Label returns the singular human-readable name for a kind
func (k Kind) Label() string {
	switch k {
	case KindBadges:
		return "gym badge"
	case KindRibbons:
		return "ribbon"
	}
	return string(k)
}

// OutputFilename returns the scrape output file name for a kind
func (k Kind) OutputFilename() string {
	return "pokemon_" + string(k) + ".json"
}

// Record represents a single scraped collectible
type Record struct {
	Name        string  `json:"name"`
	ImageURL    *string `json:"image_url"` // nil when no image was found in the row
	Description string  `json:"description"`

	// League is the badge section heading the record was found under.
	// Informational only; never part of the serialized record.
	League string `json:"-"`
}

// NewRecord creates a new Record
func NewRecord(name string, imageURL *string, description string) *Record {
	return &Record{
		Name:        name,
		ImageURL:    imageURL,
		Description: description,
	}
}

// GenerateID creates a deterministic ID from a record's full content
func GenerateID(name, imageURL, description string) string {
	h := sha1.New()
	h.Write([]byte(name + "|" + imageURL + "|" + description))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// GenerateStableKey creates a stable identifier based on the normalized name
// This key stays the same even if the description or image changes
func GenerateStableKey(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))

	h := sha1.New()
	h.Write([]byte(normalized))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ID returns the content identity of the record
func (r *Record) ID() string {
	img := ""
	if r.ImageURL != nil {
		img = *r.ImageURL
	}
	return GenerateID(r.Name, img, r.Description)
}

// StableKey returns the rename-stable identity of the record
func (r *Record) StableKey() string {
	return GenerateStableKey(r.Name)
}

// MarshalRecords serializes records as the scrape output format: a UTF-8
// JSON array with 4-space indentation, HTML characters left unescaped and
// no trailing newline
func MarshalRecords(records []*Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
