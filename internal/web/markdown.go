package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"notesite/internal/notes"
)

var mdRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
		),
	),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// Destinations may still contain raw spaces before resolution encodes them.
var mdImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// renderMarkdown converts a note body to HTML. Obsidian embeds are converted
// first so sample bodies render the same as live ones, then every image
// target goes through the source's asset resolution. Resolution is
// idempotent, so bodies already rewritten at fetch time are unaffected.
func renderMarkdown(src notes.Source, body string) template.HTML {
	body = notes.ConvertObsidianEmbeds(body)
	body = mdImageRe.ReplaceAllStringFunc(body, func(m string) string {
		sub := mdImageRe.FindStringSubmatch(m)
		return "![" + sub[1] + "](" + src.ResolveAssetURL(sub[2]) + ")"
	})
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(body), &buf); err != nil {
		slog.Error("render markdown", "err", err)
		return ""
	}
	return template.HTML(buf.String())
}
