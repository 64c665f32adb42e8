package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"plume/internal/config"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Title:        "Test Blog",
		Author:       "Tester",
		BaseURL:      "https://example.com",
		Domain:       "example.com",
		Template:     "simple",
		PostsPerPage: 6,
	}
}

func TestBuildSite_EndToEnd_SevenPostsTwoListings(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	templateDir := filepath.Join(root, "templates")
	staticDir := filepath.Join(root, "static")
	outputDir := filepath.Join(root, "public")

	require.NoError(t, os.MkdirAll(contentDir, 0755))
	writeTestTheme(t, templateDir)
	for i := 1; i <= 7; i++ {
		doc := fmt.Sprintf("title: Post %d\ndate: 2025-01-%02d\nsummary: Summary %d\n\nBody of post %d.\n", i, i, i, i)
		name := fmt.Sprintf("post%d.md", i)
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, name), []byte(doc), 0644))
	}

	tmpl, err := LoadTemplates(templateDir, "simple")
	require.NoError(t, err)

	pageCount, err := BuildSite(outputDir, contentDir, staticDir, testSite(), tmpl, BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, 9, pageCount) // 7 standalone pages + 2 listings

	for i := 1; i <= 7; i++ {
		require.FileExists(t, filepath.Join(outputDir, fmt.Sprintf("post%d.html", i)))
	}
	require.FileExists(t, filepath.Join(outputDir, "index.html"))
	require.FileExists(t, filepath.Join(outputDir, "page2.html"))
	require.NoFileExists(t, filepath.Join(outputDir, "page3.html"))

	// Page 1 links forward to page 2; page 2 links back to the
	// canonical listing name.
	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), `next="page2.html"`)
	require.Contains(t, string(index), `prev=""`)
	page2, err := os.ReadFile(filepath.Join(outputDir, "page2.html"))
	require.NoError(t, err)
	require.Contains(t, string(page2), `prev="index.html"`)
	require.Contains(t, string(page2), `next=""`)

	// The newest post leads the first listing.
	require.Contains(t, string(index), "Post 7")
	require.NotContains(t, string(index), "Post 1")
	require.Contains(t, string(page2), "Post 1")

	// Search index carries all seven records in collection order.
	data, err := os.ReadFile(filepath.Join(outputDir, "search.json"))
	require.NoError(t, err)
	var records []SearchRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 7)
	require.Equal(t, "Post 7", records[0].Title)
	require.Equal(t, "post7.html", records[0].URL)
	require.Equal(t, "Post 1", records[6].Title)

	// Collateral artifacts.
	require.FileExists(t, filepath.Join(outputDir, "CNAME"))
	cname, err := os.ReadFile(filepath.Join(outputDir, "CNAME"))
	require.NoError(t, err)
	require.Equal(t, "example.com", string(cname))
	require.FileExists(t, filepath.Join(outputDir, "css", "syntax.css"))
}

func TestBuildSite_MissingContentRoot_WarnsAndWritesNoPages(t *testing.T) {
	root := t.TempDir()
	templateDir := filepath.Join(root, "templates")
	outputDir := filepath.Join(root, "public")
	writeTestTheme(t, templateDir)

	tmpl, err := LoadTemplates(templateDir, "simple")
	require.NoError(t, err)

	pageCount, err := BuildSite(outputDir, filepath.Join(root, "content"), filepath.Join(root, "static"), testSite(), tmpl, BuildOptions{})
	require.NoError(t, err)
	require.Zero(t, pageCount)
	require.NoFileExists(t, filepath.Join(outputDir, "index.html"))
	require.NoFileExists(t, filepath.Join(outputDir, "search.json"))
}

func TestBuildSite_EmptyContentRoot_WarnsAndWritesNoPages(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	templateDir := filepath.Join(root, "templates")
	outputDir := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(contentDir, 0755))
	writeTestTheme(t, templateDir)

	tmpl, err := LoadTemplates(templateDir, "simple")
	require.NoError(t, err)

	pageCount, err := BuildSite(outputDir, contentDir, filepath.Join(root, "static"), testSite(), tmpl, BuildOptions{})
	require.NoError(t, err)
	require.Zero(t, pageCount)
	require.NoFileExists(t, filepath.Join(outputDir, "index.html"))
}

func TestBuildSite_RebuildIsIdempotent(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	templateDir := filepath.Join(root, "templates")
	outputDir := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(contentDir, 0755))
	writeTestTheme(t, templateDir)
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "only.md"),
		[]byte("title: Only\ndate: 2025-04-01\n\nBody.\n"), 0644))

	tmpl, err := LoadTemplates(templateDir, "simple")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		pageCount, err := BuildSite(outputDir, contentDir, filepath.Join(root, "static"), testSite(), tmpl, BuildOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, pageCount)
	}
	require.FileExists(t, filepath.Join(outputDir, "only.html"))
}

func TestLoadPosts_TransformsAndNormalizesEveryDocument(t *testing.T) {
	contentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "a.md"),
		[]byte("title: A\ndate: 2025-01-02\n\nHello.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "b.md"),
		[]byte("Plain body with no metadata.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "notes.txt"),
		[]byte("not a content document"), 0644))

	posts, err := LoadPosts(contentDir, "https://example.com", BuildOptions{})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	require.Equal(t, "a.md", posts[0].Filename)
	require.Equal(t, "A", posts[0].Meta.Title)
	require.Equal(t, "2025-01-02", posts[0].Meta.Date)

	require.Equal(t, "b.md", posts[1].Filename)
	require.Equal(t, "b", posts[1].Meta.Title)
	require.Equal(t, "2025-01-01", posts[1].Meta.Date)
	require.Equal(t, "https://example.com/b.html", posts[1].FullURL)
}
