// internal/builder/normalize.go
package builder

import (
	"html/template"
	"math"
	"path/filepath"
	"strings"
)

const (
	defaultSummary = "No summary provided."
	defaultDate    = "2025-01-01"
	defaultImage   = "images/default-cover.jpg"

	wordsPerMinute = 200
)

// Normalize fills in defaults for the recognized metadata keys, derives
// the output filename and absolute URLs, and estimates the read time.
// Defaults apply only when a key is absent; declared values, well-formed
// or not, pass through unchanged. The returned Post is complete and is
// never mutated by a later stage.
func Normalize(filename string, fields map[string]string, body string, wordCount int, baseURL string) *Post {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	meta := Metadata{
		Title:   stem,
		Summary: defaultSummary,
		Date:    defaultDate,
		Image:   defaultImage,
	}
	for key, value := range fields {
		switch key {
		case "title":
			meta.Title = value
		case "summary":
			meta.Summary = value
		case "date":
			meta.Date = value
		case "image":
			meta.Image = value
		default:
			if meta.Extra == nil {
				meta.Extra = map[string]string{}
			}
			meta.Extra[key] = value
		}
	}

	slug := stem + ".html"
	return &Post{
		Filename:     filename,
		Slug:         slug,
		Content:      template.HTML(body),
		Meta:         meta,
		ReadTime:     ReadTime(wordCount),
		FullURL:      baseURL + "/" + slug,
		FullImageURL: baseURL + "/" + meta.Image,
	}
}

// ReadTime estimates reading minutes from a word count, never below one.
func ReadTime(wordCount int) int {
	minutes := int(math.Round(float64(wordCount) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
