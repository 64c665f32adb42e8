// internal/builder/render.go
package builder

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"plume/internal/config"
)

// ErrTemplateResolution reports that a required template could not be
// located or parsed. It is fatal: no partial output is valid without it.
var ErrTemplateResolution = errors.New("template resolution failed")

const (
	postTemplate    = "post.html"
	listingTemplate = "index.html"
)

// LoadTemplates parses the post and listing templates from the theme
// directory under templateDir.
func LoadTemplates(templateDir, themeName string) (*template.Template, error) {
	path := filepath.Join(templateDir, themeName)
	tmpl, err := template.ParseFiles(
		filepath.Join(path, postTemplate),
		filepath.Join(path, listingTemplate),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateResolution, err)
	}
	return tmpl, nil
}

// RenderPost writes one post's standalone page into the output root,
// named by its slug.
func RenderPost(tmpl *template.Template, outputDir string, post *Post, site config.SiteConfig) error {
	data := PostData{
		Post:  post,
		Title: post.Meta.Title,
		Site:  site,
	}
	return renderTo(tmpl, postTemplate, filepath.Join(outputDir, post.Slug), data)
}

// RenderListing writes one paginated listing page into the output root.
func RenderListing(tmpl *template.Template, outputDir string, page Page, site config.SiteConfig) error {
	data := ListingData{
		Posts:       page.Posts,
		CurrentPage: page.Number,
		TotalPages:  page.TotalPages,
		PrevURL:     page.PrevURL,
		NextURL:     page.NextURL,
		Title:       "Home",
		Site:        site,
	}
	return renderTo(tmpl, listingTemplate, filepath.Join(outputDir, page.Filename), data)
}

// renderTo executes a named template and writes the output to a file.
func renderTo(tmpl *template.Template, name, outPath string, data any) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	return tmpl.ExecuteTemplate(outFile, name, data)
}
