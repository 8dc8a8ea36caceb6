package notes

import "context"

// NoteMetadata is one note's frontmatter plus the slug derived from its file
// name. Records are built fresh on every fetch and never persisted.
type NoteMetadata struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Date        string   `yaml:"date" json:"date,omitempty"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
	Slug        string   `yaml:"-" json:"slug"`
	IsPublic    bool     `yaml:"isPublic" json:"isPublic"`
	CoverImage  string   `yaml:"coverImage" json:"coverImage,omitempty"`
}

// NoteContent pairs metadata with the markdown body after frontmatter
// splitting and embed conversion.
type NoteContent struct {
	Metadata NoteMetadata
	Content  string
}

// Source is the note backend, chosen once at startup: GitHubSource when the
// repository is configured, SampleSource otherwise. Implementations absorb
// every remote failure and report it through the degraded return values
// below; nothing errors past this boundary.
type Source interface {
	// ListNotes returns metadata for every note it could fetch. A failed
	// listing is an empty result; a failed per-file fetch only drops that
	// file.
	ListNotes(ctx context.Context) []NoteMetadata
	// FetchNote returns the note for slug, or ok=false when it cannot be
	// fetched for any reason.
	FetchNote(ctx context.Context, slug string) (*NoteContent, bool)
	// NoteExists reports whether slug resolves to a note. Transient remote
	// errors report as false.
	NoteExists(ctx context.Context, slug string) bool
	// ResolveAssetURL turns an asset reference into a fetchable URL. It is a
	// pure function and leaves absolute URLs untouched, so applying it to its
	// own output is safe.
	ResolveAssetURL(path string) string
}

// PublicOnly filters a listing down to notes flagged public, preserving the
// input order.
func PublicOnly(all []NoteMetadata) []NoteMetadata {
	out := make([]NoteMetadata, 0, len(all))
	for _, note := range all {
		if note.IsPublic {
			out = append(out, note)
		}
	}
	return out
}
