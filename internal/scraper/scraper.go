package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/logger"
	"golang.org/x/net/html"
)

const (
	RibbonsURL = "https://www.serebii.net/games/ribbons.shtml"
	BadgesURL  = "https://pokemon.fandom.com/wiki/List_of_Gym_Badges"
	UserAgent  = "pokecollect-cli/1.0 (github.com/pokecollect/pokecollect)"
	Timeout    = 30 * time.Second
)

// Scraper handles fetching and parsing Pokémon collectible pages
type Scraper struct {
	client     *http.Client
	ribbonsURL string
	badgesURL  string
	userAgent  string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		ribbonsURL: RibbonsURL,
		badgesURL:  BadgesURL,
		userAgent:  UserAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with scrape requests.
// Empty values are ignored.
func (s *Scraper) SetUserAgent(ua string) {
	if ua != "" {
		s.userAgent = ua
	}
}

// FetchRibbons fetches and parses the ribbons page, returning any failure
// to the caller
func (s *Scraper) FetchRibbons() ([]*collectible.Record, error) {
	return s.fetchRecords(collectible.KindRibbons, s.ribbonsURL, s.parseRibbons)
}

// FetchBadges fetches and parses the gym badges page, returning any failure
// to the caller
func (s *Scraper) FetchBadges() ([]*collectible.Record, error) {
	return s.fetchRecords(collectible.KindBadges, s.badgesURL, s.parseBadges)
}

// Ribbons fetches ribbon records with the fail-closed contract: any failure
// is logged and an empty list is returned, never an error
func (s *Scraper) Ribbons() []*collectible.Record {
	records, err := s.FetchRibbons()
	if err != nil {
		logger.Error("ribbon scrape failed", logger.Fields{"url": s.ribbonsURL}, err)
		return []*collectible.Record{}
	}
	return records
}

// Badges fetches gym badge records with the fail-closed contract: any
// failure is logged and an empty list is returned, never an error
func (s *Scraper) Badges() []*collectible.Record {
	records, err := s.FetchBadges()
	if err != nil {
		logger.Error("gym badge scrape failed", logger.Fields{"url": s.badgesURL}, err)
		return []*collectible.Record{}
	}
	return records
}

// fetchRecords fetches one page and runs the kind-specific parser over the
// response body, recording fetch timing and record-count metrics
func (s *Scraper) fetchRecords(kind collectible.Kind, url string, parse func(io.Reader) ([]*collectible.Record, error)) ([]*collectible.Record, error) {
	start := time.Now()
	body, err := s.get(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	logger.RecordTiming("fetch."+string(kind), time.Since(start))

	records, err := parse(body)
	if err != nil {
		return nil, err
	}

	logger.AddCounter("scrape."+string(kind)+".records", int64(len(records)))
	logger.Debug("parsed records", logger.Fields{"kind": string(kind), "records": len(records)})

	return records, nil
}

// get issues a single GET request and returns the response body. Callers
// own closing the body.
func (s *Scraper) get(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// strippedText concatenates the trimmed text fragments under the first node
// of the selection, dropping fragments that trim to nothing
func strippedText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return joinText(sel.Nodes[0], "")
}

// joinedText joins the trimmed text fragments under the first node of the
// selection with single spaces
func joinedText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return joinText(sel.Nodes[0], " ")
}

// joinText walks the text nodes under n, trims each fragment, drops empty
// ones and joins the rest with sep
func joinText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if t := strings.TrimSpace(node.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}
