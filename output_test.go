package helpchunk

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteRecords verifies the output file round-trips and carries the
// exact JSON keys.
func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	records := []Record{
		{URL: "https://www.notion.so/help/foo", ChunkIndex: 0, Text: "First chunk"},
		{URL: "https://www.notion.so/help/foo", ChunkIndex: 1, Text: "Second chunk"},
	}

	require.NoError(t, WriteRecords(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)

	assert.Equal(t, "https://www.notion.so/help/foo", got[0]["url"])
	assert.Equal(t, float64(0), got[0]["chunk_index"])
	assert.Equal(t, "First chunk", got[0]["text"])
	assert.Equal(t, float64(1), got[1]["chunk_index"])
}

// TestWriteRecords_Empty verifies an empty run writes a JSON array, not
// null.
func TestWriteRecords_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	require.NoError(t, WriteRecords(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data[:2]))
}

// TestWriteRecords_UnescapedUTF8 verifies non-ASCII and HTML-significant
// characters are written literally, not escaped.
func TestWriteRecords_UnescapedUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	records := []Record{
		{URL: "https://www.notion.so/help/foo", ChunkIndex: 0, Text: "café & <b>things</b> — naïve"},
	}

	require.NoError(t, WriteRecords(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "café")
	assert.Contains(t, content, "&")
	assert.Contains(t, content, "<b>")
	assert.NotContains(t, content, "\\u0026")
	assert.NotContains(t, content, "\\u003c")
}

// TestWriteRecords_Overwrites verifies a rerun replaces the prior file
// entirely.
func TestWriteRecords_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.json")

	first := []Record{
		{URL: "https://www.notion.so/help/a", ChunkIndex: 0, Text: "old"},
		{URL: "https://www.notion.so/help/b", ChunkIndex: 0, Text: "old"},
	}
	require.NoError(t, WriteRecords(first, path))

	second := []Record{
		{URL: "https://www.notion.so/help/c", ChunkIndex: 0, Text: "new"},
	}
	require.NoError(t, WriteRecords(second, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []Record
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.notion.so/help/c", got[0].URL)
}

// TestWriteRecords_BadPath verifies write failures surface as errors.
func TestWriteRecords_BadPath(t *testing.T) {
	err := WriteRecords([]Record{}, filepath.Join(t.TempDir(), "missing", "chunks.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output file")
}
