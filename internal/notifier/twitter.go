package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pokecollect/pokecollect/internal/collectible"
)

// TwitterNotifier posts newly tracked records to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per record
func (n *TwitterNotifier) Notify(records []*collectible.Record) error {
	for i, rec := range records {
		post := formatPost(rec)

		_, _, err := n.client.Statuses.Update(post, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for record %s: %w", rec.ID(), err)
		}

		// Rate limiting: wait between tweets
		if i < len(records)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatPost formats a record as a tweet
func formatPost(rec *collectible.Record) string {
	post := "✨ New Pokémon collectible tracked!\n\n"
	post += fmt.Sprintf("🏅 %s\n", rec.Name)

	if rec.League != "" {
		post += fmt.Sprintf("🗺️ %s\n", rec.League)
	}

	if rec.Description != "" {
		post += fmt.Sprintf("📝 %s\n", rec.Description)
	}

	post += "\n🔗 Full lists at serebii.net and the Pokémon wiki\n"
	post += "\n#Pokemon #PokemonBadges"

	// Twitter limit is 280 characters
	if len(post) > 280 {
		// Truncate and add ellipsis
		post = post[:277] + "..."
	}

	return post
}
