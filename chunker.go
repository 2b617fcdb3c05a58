package helpchunk

// A Record associates one chunk of article text with its source URL and
// the chunk's zero-based position within that article. Records are
// created once during a run and never mutated afterwards.
type Record struct {
	URL        string `json:"url"`
	ChunkIndex int    `json:"chunk_index"`
	Text       string `json:"text"`
}

// ChunkBlocks packs an ordered sequence of text blocks into chunks,
// joining blocks within a chunk by newlines. A single greedy forward
// pass: each block either extends the current chunk or starts the next
// one. A block is never split across two chunks, so a block longer than
// maxLength becomes a chunk on its own -- the bound is advisory for that
// case only. Empty input yields no chunks.
func ChunkBlocks(blocks []string, maxLength int) []string {
	var chunks []string
	var current string

	for _, block := range blocks {
		// An empty accumulator always takes the block, even an
		// oversized one.
		if current == "" {
			current = block
			continue
		}

		// +1 accounts for the joining newline.
		if len(current)+len(block)+1 < maxLength {
			current += "\n" + block
		} else {
			chunks = append(chunks, current)
			current = block
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// RecordsForArticle converts one article's chunks into output records,
// indexed from zero.
func RecordsForArticle(url string, chunks []string) []Record {
	records := make([]Record, 0, len(chunks))
	for i, chunk := range chunks {
		records = append(records, Record{
			URL:        url,
			ChunkIndex: i,
			Text:       chunk,
		})
	}
	return records
}
