// internal/builder/search.go
package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// searchIndexFile is the single artifact derived from the collection as
// a whole; the client fetches it to search without a server.
const searchIndexFile = "search.json"

// BuildSearchIndex projects the ordered collection into the minimal
// record set used for client-side search, in collection order.
func BuildSearchIndex(posts []*Post) []SearchRecord {
	records := make([]SearchRecord, 0, len(posts))
	for _, post := range posts {
		records = append(records, SearchRecord{
			Title:   post.Meta.Title,
			URL:     post.Slug,
			Summary: post.Meta.Summary,
		})
	}
	return records
}

// WriteSearchIndex serializes the search records into one JSON file in
// the output root.
func WriteSearchIndex(outputDir string, records []SearchRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize search index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, searchIndexFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write search index: %w", err)
	}
	return nil
}
