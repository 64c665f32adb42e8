// internal/builder/builder.go
package builder

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"plume/internal/config"
)

// BuildOptions carries the per-invocation switches for a build.
type BuildOptions struct {
	Unsafe bool
	Debug  bool
}

// BuildSite runs the full pipeline: prepare the output root, write the
// collateral artifacts, load and transform every post, order the
// collection, write the search index, and render the post and listing
// pages. It returns the number of HTML pages generated. An empty
// collection is reported with a warning and produces no page output.
func BuildSite(outputDir, contentDir, staticDir string, site config.SiteConfig, tmpl *template.Template, opts BuildOptions) (int, error) {
	slog.Info("Preparing output directory", "dir", outputDir)
	if err := PrepareOutputDir(outputDir); err != nil {
		return 0, fmt.Errorf("failed to prepare output directory: %w", err)
	}
	if err := WriteCNAME(outputDir, site.Domain); err != nil {
		return 0, fmt.Errorf("failed to write CNAME: %w", err)
	}
	if err := CopyImages(contentDir, outputDir); err != nil {
		return 0, fmt.Errorf("failed to copy images: %w", err)
	}
	if err := CopyStaticAssets(staticDir, outputDir); err != nil {
		return 0, fmt.Errorf("failed to copy static assets: %w", err)
	}
	if err := WriteSyntaxCSS(outputDir); err != nil {
		return 0, err
	}

	posts, err := LoadPosts(contentDir, site.BaseURL, opts)
	if err != nil {
		return 0, err
	}
	if len(posts) == 0 {
		slog.Warn("No posts found, skipping page generation", "content", contentDir)
		return 0, nil
	}

	SortPosts(posts)

	slog.Info("Writing search index", "posts", len(posts))
	if err := WriteSearchIndex(outputDir, BuildSearchIndex(posts)); err != nil {
		return 0, err
	}

	slog.Info("Rendering post pages", "count", len(posts))
	pagesGenerated := 0
	for _, post := range posts {
		if err := RenderPost(tmpl, outputDir, post, site); err != nil {
			return pagesGenerated, fmt.Errorf("failed to render page %s: %w", post.Slug, err)
		}
		pagesGenerated++
	}

	pages := Paginate(posts, site.PostsPerPage)
	slog.Info("Rendering listing pages", "count", len(pages))
	for _, page := range pages {
		if err := RenderListing(tmpl, outputDir, page, site); err != nil {
			return pagesGenerated, fmt.Errorf("failed to render listing %s: %w", page.Filename, err)
		}
		pagesGenerated++
	}

	return pagesGenerated, nil
}

// LoadPosts enumerates, transforms, and normalizes every source document
// under contentDir. A missing content root degrades to an empty
// collection with a warning; a single unreadable document fails the
// whole load.
func LoadPosts(contentDir, baseURL string, opts BuildOptions) ([]*Post, error) {
	names, err := ListSources(contentDir)
	if err != nil {
		if errors.Is(err, ErrMissingContentRoot) {
			slog.Warn("Content root missing, treating as empty collection", "dir", contentDir)
			return nil, nil
		}
		return nil, err
	}

	transformer := NewTransformer(opts)
	posts := make([]*Post, 0, len(names))
	for _, name := range names {
		raw, err := ReadSource(contentDir, name)
		if err != nil {
			return nil, err
		}
		body, fields, wordCount, err := transformer.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to process content for %s: %w", name, err)
		}
		posts = append(posts, Normalize(name, fields, body, wordCount, baseURL))
	}
	return posts, nil
}
