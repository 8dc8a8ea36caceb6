package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"

	"notesite/internal/config"
)

const debugSampleFileMax = 10

// DebugReport is the /api/debug payload: which settings are present and how
// far the GitHub checks got. A failed stage stops later checks but keeps
// everything gathered before it.
type DebugReport struct {
	Environment EnvStatus    `json:"environment"`
	GitHub      GitHubStatus `json:"github_status"`
}

type EnvStatus struct {
	Owner       string   `json:"github_owner"`
	Repo        string   `json:"github_repo"`
	Token       string   `json:"github_token"`
	NotesPath   string   `json:"notes_path"`
	MissingVars []string `json:"missing_vars"`
}

type GitHubStatus struct {
	TokenStatus    string          `json:"token_status"`
	RepoInfo       *RepoInfo       `json:"repo_info,omitempty"`
	RepoError      string          `json:"repo_error,omitempty"`
	NotesDirectory *NotesDirStatus `json:"notes_directory,omitempty"`
}

type RepoInfo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
}

type NotesDirStatus struct {
	Status        string   `json:"status"`
	ItemsCount    int      `json:"items_count,omitempty"`
	MarkdownFiles []string `json:"markdown_files,omitempty"`
	HasMoreFiles  bool     `json:"has_more_files,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// debugAPI covers the three read-only GitHub calls the report performs.
type debugAPI interface {
	AuthenticatedUser(ctx context.Context) (*github.User, error)
	Repository(ctx context.Context, owner, repo string) (*github.Repository, error)
	Contents(ctx context.Context, owner, repo, path string) (*github.RepositoryContent, []*github.RepositoryContent, error)
}

type githubDebugAPI struct {
	client *github.Client
}

func (a githubDebugAPI) AuthenticatedUser(ctx context.Context) (*github.User, error) {
	user, _, err := a.client.Users.Get(ctx, "")
	return user, err
}

func (a githubDebugAPI) Repository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	r, _, err := a.client.Repositories.Get(ctx, owner, repo)
	return r, err
}

func (a githubDebugAPI) Contents(ctx context.Context, owner, repo, path string) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	file, dir, _, err := a.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	return file, dir, err
}

// BuildDebugReport runs the configuration checks against the live API. It
// never mutates remote state; every call is a read.
func BuildDebugReport(ctx context.Context, cfg config.Config) DebugReport {
	api := githubDebugAPI{client: github.NewClient(nil).WithAuthToken(cfg.GitHubToken)}
	return buildDebugReport(ctx, cfg, api)
}

func buildDebugReport(ctx context.Context, cfg config.Config, api debugAPI) DebugReport {
	report := DebugReport{
		Environment: EnvStatus{
			Owner:       valueOrNotSet(cfg.GitHubOwner),
			Repo:        valueOrNotSet(cfg.GitHubRepo),
			Token:       tokenStatus(cfg.GitHubToken),
			NotesPath:   valueOrNotSet(cfg.NotesPath),
			MissingVars: cfg.MissingVars,
		},
		GitHub: GitHubStatus{TokenStatus: "Not checked"},
	}

	if cfg.GitHubToken == "" {
		report.GitHub.TokenStatus = "Error: GitHub token is not set"
		return report
	}
	user, err := api.AuthenticatedUser(ctx)
	if err != nil {
		report.GitHub.TokenStatus = fmt.Sprintf("Error: %v", err)
		return report
	}
	report.GitHub.TokenStatus = fmt.Sprintf("Valid (authenticated as %s)", user.GetLogin())

	if cfg.GitHubOwner == "" || cfg.GitHubRepo == "" {
		report.GitHub.RepoError = "GitHub owner or repo is not set"
		return report
	}
	repo, err := api.Repository(ctx, cfg.GitHubOwner, cfg.GitHubRepo)
	if err != nil {
		report.GitHub.RepoError = fmt.Sprintf("Error accessing repository: %v", err)
		return report
	}
	report.GitHub.RepoInfo = &RepoInfo{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Visibility:    repo.GetVisibility(),
		DefaultBranch: repo.GetDefaultBranch(),
	}

	report.GitHub.NotesDirectory = checkNotesDir(ctx, cfg, api)
	return report
}

func checkNotesDir(ctx context.Context, cfg config.Config, api debugAPI) *NotesDirStatus {
	file, entries, err := api.Contents(ctx, cfg.GitHubOwner, cfg.GitHubRepo, cfg.NotesPath)
	switch {
	case err != nil && isNotFound(err):
		return &NotesDirStatus{
			Status: "Not found",
			Error:  fmt.Sprintf("Directory not found: %s", cfg.NotesPath),
		}
	case err != nil:
		return &NotesDirStatus{
			Status: "Error",
			Error:  fmt.Sprintf("Error accessing notes directory: %v", err),
		}
	case file != nil:
		return &NotesDirStatus{Status: "Not a directory"}
	}

	var names []string
	for _, entry := range entries {
		if entry.GetType() == "file" && strings.HasSuffix(entry.GetName(), noteExtension) {
			names = append(names, entry.GetName())
		}
	}
	status := &NotesDirStatus{Status: "Found", ItemsCount: len(entries)}
	if len(names) > debugSampleFileMax {
		status.HasMoreFiles = true
		names = names[:debugSampleFileMax]
	}
	status.MarkdownFiles = names
	return status
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

func valueOrNotSet(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}

func tokenStatus(token string) string {
	if token == "" {
		return "not set"
	}
	return "set (masked)"
}
