// internal/builder/collection.go
package builder

import (
	"fmt"
	"sort"
)

// SortPosts orders the collection by date descending. The comparison is
// lexicographic on the date string (authors supply sortable dates such
// as ISO 8601); equal dates keep their input order.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Meta.Date > posts[j].Meta.Date
	})
}

// ListingFileName returns the output filename for a listing page: the
// canonical index for page one, a numbered name for the rest.
func ListingFileName(page int) string {
	if page == 1 {
		return "index.html"
	}
	return fmt.Sprintf("page%d.html", page)
}

// Paginate partitions the ordered collection into pages of at most
// perPage posts and computes each page's navigation links. PrevURL and
// NextURL are empty only at the first and last page. Must not be called
// with an empty collection.
func Paginate(posts []*Post, perPage int) []Page {
	totalPages := (len(posts) + perPage - 1) / perPage

	pages := make([]Page, 0, totalPages)
	for number := 1; number <= totalPages; number++ {
		start := (number - 1) * perPage
		end := start + perPage
		if end > len(posts) {
			end = len(posts)
		}

		page := Page{
			Number:     number,
			TotalPages: totalPages,
			Posts:      posts[start:end],
			Filename:   ListingFileName(number),
		}
		if number > 1 {
			page.PrevURL = ListingFileName(number - 1)
		}
		if number < totalPages {
			page.NextURL = ListingFileName(number + 1)
		}
		pages = append(pages, page)
	}
	return pages
}
