package notes

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/google/go-github/v66/github"

	"notesite/internal/config"
)

const (
	rawContentHost = "https://raw.githubusercontent.com"
	noteExtension  = ".md"
)

// contentsAPI is the slice of the GitHub repositories service the source
// consumes. *github.RepositoriesService satisfies it.
type contentsAPI interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

// GitHubSource serves notes straight from a GitHub repository through the
// contents API. Every call re-fetches; nothing is cached between requests.
type GitHubSource struct {
	owner  string
	repo   string
	dir    string
	branch string
	api    contentsAPI
}

func NewGitHubSource(cfg config.Config) *GitHubSource {
	client := github.NewClient(nil).WithAuthToken(cfg.GitHubToken)
	return &GitHubSource{
		owner:  cfg.GitHubOwner,
		repo:   cfg.GitHubRepo,
		dir:    cfg.NotesPath,
		branch: cfg.Branch,
		api:    client.Repositories,
	}
}

func (s *GitHubSource) ListNotes(ctx context.Context) []NoteMetadata {
	_, entries, _, err := s.api.GetContents(ctx, s.owner, s.repo, s.dir, nil)
	if err != nil {
		slog.Error("list notes directory", "path", s.dir, "err", err)
		return nil
	}
	if entries == nil {
		slog.Error("notes path is not a directory", "path", s.dir)
		return nil
	}

	var files []*github.RepositoryContent
	for _, entry := range entries {
		if entry.GetType() == "file" && strings.HasSuffix(entry.GetName(), noteExtension) {
			files = append(files, entry)
		}
	}

	// One fetch per file, each with its own result slot. A failed slot is
	// skipped, never the whole listing.
	slots := make([]*NoteMetadata, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, path, name string) {
			defer wg.Done()
			raw, err := s.fetchFile(ctx, path)
			if err != nil {
				slog.Warn("fetch note", "name", name, "err", err)
				return
			}
			meta, _ := SplitFrontmatter(raw, strings.TrimSuffix(name, noteExtension))
			slots[i] = &meta
		}(i, file.GetPath(), file.GetName())
	}
	wg.Wait()

	out := make([]NoteMetadata, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			out = append(out, *slot)
		}
	}
	return out
}

func (s *GitHubSource) FetchNote(ctx context.Context, slug string) (*NoteContent, bool) {
	raw, err := s.fetchFile(ctx, s.notePath(slug))
	if err != nil {
		slog.Warn("fetch note", "slug", slug, "err", err)
		return nil, false
	}
	meta, body := SplitFrontmatter(raw, slug)
	return &NoteContent{Metadata: meta, Content: ConvertObsidianEmbeds(body)}, true
}

func (s *GitHubSource) NoteExists(ctx context.Context, slug string) bool {
	_, err := s.fetchFile(ctx, s.notePath(slug))
	return err == nil
}

// ResolveAssetURL maps a relative asset reference onto the repository's raw
// content host. Paths outside the vault prefix get it prepended, then the
// whole path is percent-encoded once.
func (s *GitHubSource) ResolveAssetURL(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	clean := strings.TrimPrefix(path, "/")
	if !strings.HasPrefix(clean, VaultPrefix) && !strings.Contains(clean, "://") {
		clean = VaultPrefix + clean
	}
	encoded := (&url.URL{Path: clean}).EscapedPath()
	return fmt.Sprintf("%s/%s/%s/%s/%s", rawContentHost, s.owner, s.repo, s.branch, encoded)
}

func (s *GitHubSource) notePath(slug string) string {
	return s.dir + "/" + slug + noteExtension
}

func (s *GitHubSource) fetchFile(ctx context.Context, path string) (string, error) {
	file, _, _, err := s.api.GetContents(ctx, s.owner, s.repo, path, nil)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("%s is not a file", path)
	}
	return file.GetContent()
}
