package builder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func postWithDate(name, date string) *Post {
	return &Post{
		Filename: name,
		Slug:     name + ".html",
		Meta:     Metadata{Title: name, Date: date},
	}
}

func TestSortPosts_OrdersByDateStringDescending(t *testing.T) {
	posts := []*Post{
		postWithDate("b", "2025-01-02"),
		postWithDate("c", "2025-01-03"),
		postWithDate("a", "2025-01-01"),
	}

	SortPosts(posts)

	require.Equal(t, "c", posts[0].Filename)
	require.Equal(t, "b", posts[1].Filename)
	require.Equal(t, "a", posts[2].Filename)
}

func TestSortPosts_EqualDates_PreserveInputOrder(t *testing.T) {
	posts := []*Post{
		postWithDate("first", "2025-06-01"),
		postWithDate("second", "2025-06-01"),
		postWithDate("third", "2025-06-01"),
	}

	SortPosts(posts)

	require.Equal(t, "first", posts[0].Filename)
	require.Equal(t, "second", posts[1].Filename)
	require.Equal(t, "third", posts[2].Filename)
}

func TestListingFileName_CanonicalForPageOne_NumberedAfter(t *testing.T) {
	require.Equal(t, "index.html", ListingFileName(1))
	require.Equal(t, "page2.html", ListingFileName(2))
	require.Equal(t, "page10.html", ListingFileName(10))
}

func TestPaginate_ThirteenPostsCapacitySix(t *testing.T) {
	posts := make([]*Post, 0, 13)
	for i := 0; i < 13; i++ {
		posts = append(posts, postWithDate(fmt.Sprintf("p%02d", i), "2025-01-01"))
	}

	pages := Paginate(posts, 6)
	require.Len(t, pages, 3)
	require.Len(t, pages[0].Posts, 6)
	require.Len(t, pages[1].Posts, 6)
	require.Len(t, pages[2].Posts, 1)

	require.Equal(t, "index.html", pages[0].Filename)
	require.Equal(t, "page2.html", pages[1].Filename)
	require.Equal(t, "page3.html", pages[2].Filename)

	require.Empty(t, pages[0].PrevURL)
	require.Equal(t, "page2.html", pages[0].NextURL)
	require.Equal(t, "index.html", pages[1].PrevURL)
	require.Equal(t, "page3.html", pages[1].NextURL)
	require.Equal(t, "page2.html", pages[2].PrevURL)
	require.Empty(t, pages[2].NextURL)

	for _, page := range pages {
		require.Equal(t, 3, page.TotalPages)
	}

	// Concatenating the pages reconstructs the ordered collection.
	var rejoined []*Post
	for _, page := range pages {
		rejoined = append(rejoined, page.Posts...)
	}
	require.Equal(t, posts, rejoined)
}

func TestPaginate_ExactMultiple_HasNoShortPage(t *testing.T) {
	posts := make([]*Post, 0, 12)
	for i := 0; i < 12; i++ {
		posts = append(posts, postWithDate(fmt.Sprintf("p%02d", i), "2025-01-01"))
	}

	pages := Paginate(posts, 6)
	require.Len(t, pages, 2)
	require.Len(t, pages[0].Posts, 6)
	require.Len(t, pages[1].Posts, 6)
}

func TestPaginate_SinglePage_HasNoNavigation(t *testing.T) {
	pages := Paginate([]*Post{postWithDate("only", "2025-01-01")}, 6)

	require.Len(t, pages, 1)
	require.Empty(t, pages[0].PrevURL)
	require.Empty(t, pages[0].NextURL)
	require.Equal(t, "index.html", pages[0].Filename)
}
