package helpchunk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteRecords serializes records as one indented JSON array at path,
// overwriting any previous run's output. HTML escaping is disabled so
// non-ASCII article text passes through as plain UTF-8. A nil or empty
// record set is written as an empty array, not null.
func WriteRecords(records []Record, path string) error {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
