package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pokecollect/pokecollect/internal/collectible"
)

// serebiiImageBase prefixes relative ribbon image paths. Joined with exactly
// one slash between base and path.
const serebiiImageBase = "https://www.serebii.net/games"

// parseRibbons extracts ribbon records from the ribbons page HTML. Rows of
// the site's standard data table become records in document order; rows with
// fewer than three cells are skipped.
func (s *Scraper) parseRibbons(r io.Reader) ([]*collectible.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table.dextable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("ribbon table not found")
	}

	records := make([]*collectible.Record, 0)

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		var imageURL *string
		img := cells.Eq(0).Find("img").First()
		if src, ok := img.Attr("src"); ok {
			abs := absoluteRibbonURL(src)
			imageURL = &abs
		}

		name := strippedText(cells.Eq(1))
		description := joinedText(cells.Eq(2))

		records = append(records, collectible.NewRecord(name, imageURL, description))
	})

	return records, nil
}

// absoluteRibbonURL rewrites a relative Serebii image path to an absolute URL
func absoluteRibbonURL(src string) string {
	if strings.HasPrefix(src, "http") {
		return src
	}
	if !strings.HasPrefix(src, "/") {
		src = "/" + src
	}
	return serebiiImageBase + src
}
