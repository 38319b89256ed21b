// Package inspect reports on forms and their rendered markup.
package inspect

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Dangling parses rendered markup and returns the text of every reference
// link whose target anchor does not exist, once each, in document order.
// The markup must have been rendered with heading IDs.
func Dangling(markup string) ([]string, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("could not parse markup: %w", err)
	}

	anchors := map[string]bool{}
	document.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		anchors[s.AttrOr("id", "")] = true
	})

	var dangling []string
	seen := map[string]bool{}
	document.Find("a.reference").Each(func(_ int, s *goquery.Selection) {
		target := strings.TrimPrefix(s.AttrOr("href", ""), "#")
		if anchors[target] {
			return
		}
		text := s.Text()
		if seen[text] {
			return
		}
		seen[text] = true
		dangling = append(dangling, text)
	})
	return dangling, nil
}
