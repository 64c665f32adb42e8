// internal/builder/transform.go
package builder

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"gopkg.in/yaml.v3"
)

// highlightStyle is the chroma style used for fenced code blocks. The
// matching stylesheet is exported by WriteSyntaxCSS.
const highlightStyle = "monokai"

// Transformer renders one post's raw text into HTML and extracts its
// declared metadata. It keeps no per-document state: goldmark parses
// with a fresh context on every Convert, so a single instance can serve
// the whole collection, or one per worker in a concurrent build.
type Transformer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	sanitize bool
}

// NewTransformer builds the markdown pipeline: GFM plus footnotes, auto
// heading IDs, class-based code highlighting, and rewriting of relative
// .md links to their rendered pages.
func NewTransformer(opts BuildOptions) *Transformer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newLinkRewriter(), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Transformer{
		md:       md,
		policy:   newSanitizerPolicy(),
		sanitize: !opts.Unsafe,
	}
}

// newSanitizerPolicy extends the UGC policy so that heading anchors and
// chroma's class-based highlighting markup survive sanitization.
func newSanitizerPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)).
		OnElements("pre", "code", "span", "div")
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).
		OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// Transform converts one document's raw text into HTML plus its declared
// metadata, and counts the whitespace-delimited words of the raw text
// for the read-time estimate. A document without a metadata block yields
// an empty map, not an error.
func (t *Transformer) Transform(raw []byte) (string, map[string]string, int, error) {
	meta, body, err := splitMetadata(raw)
	if err != nil {
		return "", nil, 0, err
	}
	wordCount := len(strings.Fields(string(raw)))

	var buf bytes.Buffer
	if err := t.md.Convert(body, &buf); err != nil {
		return "", nil, 0, fmt.Errorf("failed to render markdown: %w", err)
	}

	out := buf.Bytes()
	if t.sanitize {
		out = t.policy.SanitizeBytes(out)
	}
	return string(out), meta, wordCount, nil
}

var metaLineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*):\s*(.*)$`)

// splitMetadata separates the optional leading metadata block from the
// body. Two block forms are recognized: `---`-delimited YAML front
// matter, and a bare run of `key: value` lines ending at the first blank
// or non-conforming line. Values are kept as single strings.
func splitMetadata(raw []byte) (map[string]string, []byte, error) {
	meta := map[string]string{}

	if bytes.HasPrefix(raw, []byte("---\n")) || bytes.HasPrefix(raw, []byte("---\r\n")) {
		parts := bytes.SplitN(raw, []byte("---"), 3)
		if len(parts) < 3 {
			return meta, raw, nil
		}
		var fields map[string]any
		if err := yaml.Unmarshal(parts[1], &fields); err != nil {
			return nil, nil, fmt.Errorf("failed to parse front matter: %w", err)
		}
		for key, value := range fields {
			meta[strings.ToLower(key)] = fmt.Sprintf("%v", value)
		}
		return meta, parts[2], nil
	}

	rest := raw
	matched := false
	for len(rest) > 0 {
		line, remainder, found := bytes.Cut(rest, []byte("\n"))
		m := metaLineRe.FindStringSubmatch(strings.TrimRight(string(line), "\r"))
		if m == nil {
			break
		}
		meta[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
		matched = true
		if !found {
			rest = nil
			break
		}
		rest = remainder
	}
	if !matched {
		return meta, raw, nil
	}

	// A single blank line after the block belongs to the delimiter.
	if after, ok := bytes.CutPrefix(rest, []byte("\r\n")); ok {
		rest = after
	} else if after, ok := bytes.CutPrefix(rest, []byte("\n")); ok {
		rest = after
	}
	return meta, rest, nil
}
