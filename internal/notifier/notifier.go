package notifier

import (
	"github.com/pokecollect/pokecollect/internal/collectible"
)

// Notifier defines the interface for announcing newly tracked records
type Notifier interface {
	// Notify posts announcements for the given records
	Notify(records []*collectible.Record) error
}
