package helpchunk

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/pevans/helpchunk/config"
)

// Crawler runs a full crawl: discover article links from the listing
// page, scrape and chunk each article sequentially, and accumulate
// output records.
type Crawler struct {
	fetcher Fetcher
	cfg     *config.Config
}

// RunSummary reports what a crawl run did.
type RunSummary struct {
	RunID    uuid.UUID
	Articles int
	Failed   int
	Records  int
}

// NewCrawler creates a crawler that fetches pages through the given
// fetcher.
func NewCrawler(fetcher Fetcher, cfg *config.Config) *Crawler {
	return &Crawler{
		fetcher: fetcher,
		cfg:     cfg,
	}
}

// DiscoverLinks fetches the listing page and extracts the deduplicated
// set of article links. A failure here leaves the run with nothing to
// scrape, so the error propagates instead of being swallowed.
func (c *Crawler) DiscoverLinks() ([]string, error) {
	doc, err := c.fetcher.Fetch(c.cfg.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	return ExtractArticleLinks(doc, LinkFilter{
		BaseURL:       c.cfg.BaseURL,
		PathMarker:    c.cfg.PathMarker,
		ExcludeMarker: c.cfg.ExcludeMarker,
	}), nil
}

// scrapeArticle fetches one article and returns its chunks.
func (c *Crawler) scrapeArticle(url string) ([]string, error) {
	doc, err := c.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}

	blocks := ExtractBlocks(doc, ArticleSelectors{
		ContainerSelector: c.cfg.ContainerSelector,
		BulletPrefix:      c.cfg.BulletPrefix,
	})

	return ChunkBlocks(blocks, c.cfg.MaxChunkLength), nil
}

// Run crawls every discovered article. One bad article never aborts the
// run: its error is logged and it contributes zero records. Only a
// discovery failure terminates the crawl.
func (c *Crawler) Run() ([]Record, *RunSummary, error) {
	summary := &RunSummary{RunID: uuid.New()}

	log.Printf("INFO: Starting crawl %s: %s", summary.RunID, c.cfg.ListingURL)

	links, err := c.DiscoverLinks()
	if err != nil {
		return nil, nil, err
	}
	summary.Articles = len(links)
	log.Printf("INFO: Discovered %d article links", len(links))

	records := []Record{}
	for _, url := range links {
		chunks, err := c.scrapeArticle(url)
		if err != nil {
			summary.Failed++
			log.Printf("ERROR: Failed to scrape %s: %v", url, err)
			continue
		}
		records = append(records, RecordsForArticle(url, chunks)...)
	}

	summary.Records = len(records)
	log.Printf("INFO: Crawl %s finished: %d articles, %d failed, %d records",
		summary.RunID, summary.Articles, summary.Failed, summary.Records)

	return records, summary, nil
}
