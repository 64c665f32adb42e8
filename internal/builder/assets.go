// internal/builder/assets.go
package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// PrepareOutputDir cleans and recreates the output root with the css and
// images subdirectories every build expects. It is idempotent.
func PrepareOutputDir(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
			return err
		}
	}
	for _, sub := range []string{"css", "images"} {
		if err := os.MkdirAll(filepath.Join(outputDir, sub), 0755); err != nil {
			return err
		}
	}
	return nil
}

// WriteCNAME emits the custom-domain marker file that GitHub Pages
// expects in the output root. No-op when the site has no custom domain.
func WriteCNAME(outputDir, domain string) error {
	if domain == "" {
		return nil
	}
	return os.WriteFile(filepath.Join(outputDir, "CNAME"), []byte(domain), 0644)
}

// WriteSyntaxCSS exports the stylesheet matching the class-based code
// highlighting emitted by the markdown renderer.
func WriteSyntaxCSS(outputDir string) error {
	out, err := os.Create(filepath.Join(outputDir, "css", "syntax.css"))
	if err != nil {
		return err
	}
	defer out.Close()

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(out, styles.Get(highlightStyle)); err != nil {
		return fmt.Errorf("failed to generate syntax stylesheet: %w", err)
	}
	return nil
}

// CopyImages mirrors the content images directory into the output root.
// A missing source directory simply means the site has no images.
func CopyImages(contentDir, outputDir string) error {
	src := filepath.Join(contentDir, "images")
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return copyTree(src, filepath.Join(outputDir, "images"), nil)
}

// CopyStaticAssets copies recognized asset files from the static
// directory into the output root, preserving relative paths.
func CopyStaticAssets(staticDir, outputDir string) error {
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return nil
	}
	allowedExts := map[string]bool{
		".css": true, ".js": true, ".txt": true, ".svg": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
		".ico": true, ".woff": true, ".woff2": true,
	}
	return copyTree(staticDir, outputDir, allowedExts)
}

// copyTree mirrors srcDir into destDir. A non-nil allowedExts restricts
// the copy to files with those extensions.
func copyTree(srcDir, destDir string, allowedExts map[string]bool) error {
	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if allowedExts != nil && !allowedExts[filepath.Ext(info.Name())] {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer dst.Close()
		_, err = io.Copy(dst, src)
		return err
	})
}
