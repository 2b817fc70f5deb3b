package wmfl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var titleSelectors = []string{"h1", "title"}

// ParseTournamentTitle returns the human readable tournament name of a
// standings page, or "" when the page carries none.
func ParseTournamentTitle(document string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return ""
	}

	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := collapseSpaces(content); title != "" {
			return title
		}
	}
	for _, selector := range titleSelectors {
		if title := collapseSpaces(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return ""
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
