// internal/builder/models.go
package builder

import (
	"html/template"

	"plume/internal/config"
)

// Metadata holds the declared fields of a post. The recognized keys get
// defaults when they are absent (see Normalize); any other key the author
// declares passes through untouched in Extra.
type Metadata struct {
	Title   string
	Summary string
	Date    string
	Image   string
	Extra   map[string]string
}

// Post is the unit of content flowing through the pipeline. It is fully
// populated by Normalize and read-only in every later stage.
type Post struct {
	Filename     string
	Slug         string
	Content      template.HTML
	Meta         Metadata
	ReadTime     int
	FullURL      string
	FullImageURL string
}

// Page is one capacity-bounded window of the ordered collection plus the
// navigation links the listing template needs.
type Page struct {
	Number     int
	TotalPages int
	Posts      []*Post
	Filename   string
	PrevURL    string
	NextURL    string
}

// SearchRecord is the minimal projection of a Post used by the
// client-side search index.
type SearchRecord struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// PostData is the payload passed to the post template.
type PostData struct {
	Post  *Post
	Title string
	Site  config.SiteConfig
}

// ListingData is the payload passed to the listing template.
type ListingData struct {
	Posts       []*Post
	CurrentPage int
	TotalPages  int
	PrevURL     string
	NextURL     string
	Title       string
	Site        config.SiteConfig
}
