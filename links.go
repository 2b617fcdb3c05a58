package helpchunk

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkFilter decides which anchors on a listing page count as help
// articles and resolves their hrefs to absolute form.
type LinkFilter struct {
	// BaseURL is the site origin prefixed onto relative hrefs.
	BaseURL string
	// PathMarker must appear somewhere in the href for the link to be
	// accepted.
	PathMarker string
	// ExcludeMarker rejects any href containing it, case-insensitively.
	// Empty disables the exclusion.
	ExcludeMarker string
}

// AcceptHref reports whether a raw href points at a help article.
func (f LinkFilter) AcceptHref(href string) bool {
	if !strings.Contains(href, f.PathMarker) {
		return false
	}
	if f.ExcludeMarker != "" &&
		strings.Contains(strings.ToLower(href), strings.ToLower(f.ExcludeMarker)) {
		return false
	}
	return true
}

// ResolveHref turns a raw href into an absolute URL. Hrefs already
// carrying an HTTP scheme pass through unchanged; anything else is
// treated as site-relative and prefixed with the base origin.
func (f LinkFilter) ResolveHref(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return f.BaseURL + href
}

// ExtractArticleLinks collects every anchor on an already-fetched listing
// page that the filter accepts, resolved to absolute form and
// deduplicated. The slice is sorted so repeated runs visit articles in a
// stable order; nothing downstream depends on the ordering.
func ExtractArticleLinks(doc *goquery.Document, filter LinkFilter) []string {
	seen := make(map[string]struct{})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !filter.AcceptHref(href) {
			return
		}
		seen[filter.ResolveHref(href)] = struct{}{}
	})

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)

	return links
}
