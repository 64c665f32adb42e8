// internal/scaffold/scaffold.go
package scaffold

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"plume/internal/config"
	"plume/internal/util"
)

// CreateNewSite writes a ready-to-build blog skeleton into a new
// directory: configuration, a theme, a stylesheet, an archetype, and a
// first post.
func CreateNewSite(name string) error {
	slog.Info("Scaffolding new site", "dir", name)

	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"content/images", "static/css", "static/js", "templates/simple", "archetypes"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"site.yaml":                   siteYamlContent,
		"content/hello-world.md":      firstPostContent,
		"static/css/style.css":        staticCSSContent,
		"static/js/search.js":         searchJSContent,
		"templates/simple/post.html":  postTemplateContent,
		"templates/simple/index.html": indexTemplateContent,
		"archetypes/default.md":       archetypeContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  plume build")
	fmt.Println("  plume serve")
	return nil
}

// CreateNewPost instantiates the default archetype for a new post named
// after the slugified title, dated today.
func CreateNewPost(title, configPath string) error {
	site, err := config.LoadSiteConfig(configPath)
	if err != nil {
		return err
	}

	slug := util.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty filename", title)
	}
	path := filepath.Join("content", slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post already exists: %s", path)
	}

	archetypePath := filepath.Join("archetypes", "default.md")
	tmplBytes, err := os.ReadFile(archetypePath)
	if err != nil {
		return fmt.Errorf("could not read archetype file %s: %w", archetypePath, err)
	}
	tmpl, err := template.New("archetype").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("failed to parse archetype file %s: %w", archetypePath, err)
	}

	data := struct {
		Title  string
		Author string
		Date   string
	}{
		Title:  title,
		Author: site.Author,
		Date:   time.Now().Format("2006-01-02"),
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, data); err != nil {
		return fmt.Errorf("failed to execute archetype template: %w", err)
	}
	if err := os.WriteFile(path, output.Bytes(), 0644); err != nil {
		return err
	}

	fmt.Println("Created:", path)
	return nil
}

// Default file contents for a scaffolded site.

const siteYamlContent = `title: My Blog
author: Your Name
baseurl: https://example.com
domain: ""
description: A new blog powered by plume.
template: simple
posts_per_page: 6
`

const firstPostContent = `title: Hello, World
summary: The first post on a brand-new blog.
date: 2025-01-01

Welcome to your new blog. Edit or delete this post, then run
` + "`plume build`" + ` to regenerate the site.
`

const archetypeContent = `title: {{.Title}}
summary:
date: {{.Date}}
image: images/default-cover.jpg

Write something meaningful here.
`

const staticCSSContent = `body {
  font-family: sans-serif;
  max-width: 700px;
  margin: 2em auto;
  padding: 0 1em;
  line-height: 1.6;
  color: #222;
  background: #fdfdfd;
}
article img { max-width: 100%; }
.post-info { color: #777; font-size: 0.9em; }
.post-card { margin-bottom: 2em; }
.post-card h2 { margin-bottom: 0.25em; }
.pagination { display: flex; justify-content: space-between; margin: 2em 0; }
footer { text-align: center; font-size: 0.9em; color: #555; }
footer nav a { color: #444; text-decoration: none; margin: 0 0.5em; }
footer nav a:hover { text-decoration: underline; }
`

const searchJSContent = `// Minimal client-side search over search.json.
async function searchPosts(query) {
  const res = await fetch('search.json');
  const records = await res.json();
  const q = query.toLowerCase();
  return records.filter(r =>
    r.title.toLowerCase().includes(q) || r.summary.toLowerCase().includes(q)
  );
}
`

const postTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Title }} | {{ .Site.Title }}</title>
  <link rel="stylesheet" href="css/style.css">
  <link rel="stylesheet" href="css/syntax.css">
  <meta name="description" content="{{ .Post.Meta.Summary }}">
  <link rel="canonical" href="{{ .Post.FullURL }}">
  <meta property="og:title" content="{{ .Post.Meta.Title }}">
  <meta property="og:image" content="{{ .Post.FullImageURL }}">
</head>
<body>
  <header>
    <nav><a href="index.html">{{ .Site.Title }}</a></nav>
  </header>
  <main>
    <article>
      <h1>{{ .Post.Meta.Title }}</h1>
      <p class="post-info">{{ .Post.Meta.Date }} &middot; {{ .Post.ReadTime }} min read</p>
      {{ .Post.Content }}
    </article>
  </main>
  <footer>
    <nav><a href="index.html">home</a></nav>
    <div class="copyright">&copy; {{ .Site.Author }}</div>
  </footer>
</body>
</html>
`

const indexTemplateContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Title }} | {{ .Site.Title }}</title>
  <link rel="stylesheet" href="css/style.css">
  <meta name="description" content="{{ .Site.Description }}">
</head>
<body>
  <header>
    <nav><a href="index.html">{{ .Site.Title }}</a></nav>
  </header>
  <main>
    {{ range .Posts }}
    <section class="post-card">
      <h2><a href="{{ .Slug }}">{{ .Meta.Title }}</a></h2>
      <p class="post-info">{{ .Meta.Date }} &middot; {{ .ReadTime }} min read</p>
      <p>{{ .Meta.Summary }}</p>
    </section>
    {{ end }}
    <nav class="pagination">
      <span>{{ if .PrevURL }}<a href="{{ .PrevURL }}">&laquo; newer</a>{{ end }}</span>
      <span>Page {{ .CurrentPage }} of {{ .TotalPages }}</span>
      <span>{{ if .NextURL }}<a href="{{ .NextURL }}">older &raquo;</a>{{ end }}</span>
    </nav>
  </main>
  <footer>
    <div class="copyright">&copy; {{ .Site.Author }}</div>
  </footer>
</body>
</html>
`
