package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/logger"
	"github.com/pokecollect/pokecollect/internal/textclean"
	"golang.org/x/net/html"
)

const (
	// fandomBase prefixes relative badge image paths
	fandomBase = "https://pokemon.fandom.com"

	// unnamedBadge is the placeholder name for rows with no extractable name
	unnamedBadge = "Unnamed Badge"
)

// parseBadges extracts gym badge records from the badges page HTML. League
// tables are located by the heading-bounded sibling walk in leagueTables;
// rows with fewer than two cells are skipped.
func (s *Scraper) parseBadges(r io.Reader) ([]*collectible.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	records := make([]*collectible.Record, 0)

	tables := leagueTables(doc)
	if len(tables) == 0 {
		logger.Warn("no badge tables found", logger.Fields{"url": BadgesURL})
		return records, nil
	}

	for _, tbl := range tables {
		rows := goquery.NewDocumentFromNode(tbl.node).Find("tr")
		if rows.Length() < 2 {
			continue // header only
		}

		rows.Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return // header row
			}

			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}

			records = append(records, badgeFromRow(doc, cells, tbl.league))
		})
	}

	return records, nil
}

// leagueTable pairs a badge table node with the league section it appears
// under
type leagueTable struct {
	node   *html.Node
	league string
}

// leagueTables locates the game-league badge tables. With the anime-exclusive
// heading present, only tables structurally between the first league heading
// and the anime heading count, including tables nested under intermediate h3
// subsections; without it, every generically-styled table on the page is
// relevant. A missing start heading yields no tables.
func leagueTables(doc *goquery.Document) []leagueTable {
	anime := headingNode(doc, "h2#Anime_exclusive")
	if anime == nil {
		var tables []leagueTable
		doc.Find("table.prettytable").Each(func(_ int, sel *goquery.Selection) {
			tables = append(tables, leagueTable{node: sel.Nodes[0]})
		})
		return tables
	}

	start := headingNode(doc, "h2#Indigo_League")
	if start == nil {
		return nil
	}

	var tables []leagueTable
	league := ""

	// Walk sibling elements from the start heading to the anime heading.
	// The cursor advances one element at a time; landing on an h3 hands it
	// to sweepSubsection, which returns it positioned on the subsection's
	// terminating heading.
	cur := start
	for cur != nil && cur != anime {
		switch cur.Data {
		case "h2":
			if title := joinText(cur, " "); title != "" {
				league = title
			}
		case "table":
			tables = append(tables, leagueTable{node: cur, league: league})
		}

		cur = nextElementSibling(cur)
		if cur != nil && cur.Data == "h3" {
			var swept []leagueTable
			swept, cur = sweepSubsection(cur, league)
			tables = append(tables, swept...)
		}
	}

	return tables
}

// sweepSubsection collects the tables under an h3 heading until the next h2
// or h3 element, returning them together with the cursor positioned on that
// terminator (nil at end of siblings)
func sweepSubsection(heading *html.Node, league string) ([]leagueTable, *html.Node) {
	var tables []leagueTable

	cur := nextElementSibling(heading)
	for cur != nil && cur.Data != "h2" && cur.Data != "h3" {
		if cur.Data == "table" {
			tables = append(tables, leagueTable{node: cur, league: league})
		}
		cur = nextElementSibling(cur)
	}

	return tables, cur
}

// nextElementSibling returns the next sibling element node, skipping text
// and comment nodes
func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// headingNode resolves a heading selector to its underlying node
func headingNode(doc *goquery.Document, selector string) *html.Node {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// badgeFromRow builds a record from one badge table row. The second cell
// holds both the badge name and its prose description with no structural
// delimiter; the name is pulled from bold text or an identifiable span, and
// the description runs through the cleanup chain.
func badgeFromRow(doc *goquery.Document, cells *goquery.Selection, league string) *collectible.Record {
	var imageURL *string
	img := cells.Eq(0).Find("img.mw-file-element").First()
	if src, ok := img.Attr("data-src"); ok {
		abs := absoluteBadgeURL(src)
		imageURL = &abs
	} else if src, ok := img.Attr("src"); ok {
		abs := absoluteBadgeURL(src)
		imageURL = &abs
	}

	infoCell := cells.Eq(1)

	name := ""
	if b := infoCell.Find("b").First(); b.Length() > 0 {
		name = strings.ReplaceAll(strippedText(b), "The ", "")
	} else if span := infoCell.Find("span[id]").First(); span.Length() > 0 {
		name = strings.ReplaceAll(strippedText(span), "The ", "")
	} else {
		name = unnamedBadge
	}

	fullText := joinedText(infoCell)
	description := textclean.Apply(fullText, textclean.DescriptionSteps(name)...)

	// Rows without an extractable name carry no usable description in their
	// own cell; it lives in the paragraph under the Paldea League heading.
	if name == unnamedBadge {
		description = paldeaDescription(doc, fullText)
	}

	rec := collectible.NewRecord(name, imageURL, description)
	rec.League = league
	return rec
}

// paldeaDescription returns the stripped text of the first paragraph
// following the Paldea League heading, or fallback when the heading or
// paragraph is missing
func paldeaDescription(doc *goquery.Document, fallback string) string {
	heading := doc.Find("h2#Paldea_League").First()
	if heading.Length() == 0 {
		return fallback
	}

	para := heading.NextAllFiltered("p").First()
	if para.Length() == 0 {
		return fallback
	}

	return strippedText(para)
}

// absoluteBadgeURL rewrites a relative Fandom image path to an absolute URL
func absoluteBadgeURL(src string) string {
	if src == "" || strings.HasPrefix(src, "http") {
		return src
	}
	return fandomBase + src
}
