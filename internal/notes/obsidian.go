package notes

import (
	"regexp"
	"strings"
)

const (
	// VaultPrefix is the repository directory holding the published vault.
	VaultPrefix = "obsidianvault/"
	// AssetDir is where bare attachment names live inside the vault.
	AssetDir = "files/"
)

var embedRe = regexp.MustCompile(`!\[\[(.*?)\]\]`)

// ConvertObsidianEmbeds rewrites ![[path]] embeds into standard markdown
// image links. The alt text is the embedded path's basename. Paths that
// already name a directory are kept verbatim; bare file names are assumed to
// live under the attachment directory. No percent encoding happens here;
// ResolveAssetURL applies it uniformly later.
func ConvertObsidianEmbeds(content string) string {
	return embedRe.ReplaceAllStringFunc(content, func(m string) string {
		target := embedRe.FindStringSubmatch(m)[1]
		name := target
		if i := strings.LastIndex(target, "/"); i >= 0 {
			name = target[i+1:]
		}
		path := target
		if !strings.HasPrefix(target, VaultPrefix) && !strings.Contains(target, "/") {
			path = AssetDir + target
		}
		return "![" + name + "](" + path + ")"
	})
}
