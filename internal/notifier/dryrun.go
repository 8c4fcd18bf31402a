package notifier

import (
	"fmt"

	"github.com/pokecollect/pokecollect/internal/collectible"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be published
func (n *DryRunNotifier) Notify(records []*collectible.Record) error {
	for i, rec := range records {
		post := formatPost(rec)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(records))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d characters)\n\n", len(post))
	}
	return nil
}
