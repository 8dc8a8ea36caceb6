package notes

import (
	"context"
	"net/url"
	"strings"
)

const placeholderImageHost = "https://source.unsplash.com/random/800x600?"

// SampleSource serves a fixed demo dataset so the site renders end to end
// without a configured GitHub repository. No external calls, no state.
type SampleSource struct{}

var sampleNotes = []NoteMetadata{
	{
		Title:       "Getting started with Obsidian",
		Description: "Setting up Obsidian and a publishing workflow from scratch",
		Date:        "2023-01-15",
		Tags:        []string{"obsidian", "tutorial", "productivity"},
		Slug:        "getting-started-with-obsidian",
		IsPublic:    true,
		CoverImage:  "https://images.unsplash.com/photo-1471107340929-a87cd0f5b5f3?q=80&w=1266&auto=format&fit=crop",
	},
	{
		Title:       "Markdown syntax",
		Description: "A complete guide to markdown formatting for notes",
		Date:        "2023-02-20",
		Tags:        []string{"markdown", "tutorial", "formatting"},
		Slug:        "markdown-syntax",
		IsPublic:    true,
	},
	{
		Title:       "Advanced Obsidian plugins",
		Description: "Plugins worth installing once the basics are in place",
		Date:        "2023-03-10",
		Tags:        []string{"obsidian", "plugins", "productivity"},
		Slug:        "advanced-obsidian-plugins",
		IsPublic:    true,
		CoverImage:  "https://images.unsplash.com/photo-1517842645767-c639042777db?q=80&w=1170&auto=format&fit=crop",
	},
}

const sampleNoteBody = `
# A sample Obsidian note

This is a **demo** note used when no GitHub backend is configured.

## What renders

- Bullet lists
- *Italic* and **bold** text
- [Links](https://obsidian.md)
- And more

### Code

` + "```javascript" + `
function hello() {
  console.log("Hello from Obsidian!");
}
` + "```" + `

## Images

A plain markdown image:

![Sample image](https://images.unsplash.com/photo-1468421870903-4df1664ac249?w=800&auto=format&fit=crop)

And an Obsidian embed:

![[Pasted image 20250301151803.png]]
`

func (SampleSource) ListNotes(context.Context) []NoteMetadata {
	out := make([]NoteMetadata, len(sampleNotes))
	copy(out, sampleNotes)
	return out
}

func (SampleSource) FetchNote(_ context.Context, slug string) (*NoteContent, bool) {
	for _, note := range sampleNotes {
		if note.Slug == slug {
			return &NoteContent{Metadata: note, Content: sampleNoteBody}, true
		}
	}
	// Unknown slugs fall back to the first sample so demo mode always has
	// something to show.
	return &NoteContent{Metadata: sampleNotes[0], Content: sampleNoteBody}, true
}

func (SampleSource) NoteExists(_ context.Context, slug string) bool {
	for _, note := range sampleNotes {
		if note.Slug == slug {
			return true
		}
	}
	return slug == sampleNotes[0].Slug
}

// ResolveAssetURL swaps attachment-directory paths for placeholder images
// keyed by file name; everything else passes through, with spaces encoded
// when present.
func (SampleSource) ResolveAssetURL(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	if strings.HasPrefix(path, AssetDir) {
		return placeholderImageHost + url.PathEscape(strings.TrimPrefix(path, AssetDir))
	}
	if strings.Contains(path, " ") {
		return (&url.URL{Path: path}).EscapedPath()
	}
	return path
}
