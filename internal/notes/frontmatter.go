package notes

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// SplitFrontmatter separates the YAML header block from the markdown body.
// A missing or malformed header is not an error: the metadata comes back
// empty and the full input is the body. The slug always comes from the file
// name; a slug key in the header is discarded.
func SplitFrontmatter(raw, slug string) (NoteMetadata, string) {
	var meta NoteMetadata
	rest, err := frontmatter.Parse(strings.NewReader(raw), &meta)
	if err != nil {
		meta = NoteMetadata{}
		rest = []byte(raw)
	}
	meta.Slug = slug
	return meta, string(rest)
}
