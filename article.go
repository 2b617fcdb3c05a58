package helpchunk

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// ArticleSelectors describes where article text lives on a page.
type ArticleSelectors struct {
	// ContainerSelector locates the primary content container. When no
	// element matches, the whole document body is used instead.
	ContainerSelector string
	// BulletPrefix is prepended to each list item when a list is
	// flattened into a single block.
	BulletPrefix string
}

// ExtractBlocks pulls an ordered sequence of text blocks out of an
// already-fetched article page. The scan runs three category passes over
// the container: all headings first, then all paragraphs, then all
// lists, each pass in document order. Downstream chunking relies on this
// category grouping, so it must not be replaced with positional
// interleaving.
//
// Each list becomes a single block of bullet-prefixed item lines. Blocks
// that are empty after trimming are dropped. Malformed or unexpected
// markup yields a short or empty sequence, never an error.
func ExtractBlocks(doc *goquery.Document, sel ArticleSelectors) []string {
	container := doc.Find(sel.ContainerSelector).First()
	if container.Length() == 0 {
		container = doc.Find("body").First()
	}

	var blocks []string

	container.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	container.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	container.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		var items []string
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := normalizeText(li.Text()); text != "" {
				items = append(items, sel.BulletPrefix+text)
			}
		})
		if len(items) > 0 {
			blocks = append(blocks, strings.Join(items, "\n"))
		}
	})

	return blocks
}

// normalizeText trims raw element text and collapses internal whitespace
// runs to single spaces.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
