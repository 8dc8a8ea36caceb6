package notes

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-github/v66/github"
)

type fakeRepoAPI struct {
	dirs  map[string][]*github.RepositoryContent
	files map[string]string
	fail  map[string]error
}

func (f *fakeRepoAPI) GetContents(_ context.Context, _, _, path string, _ *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	if err, ok := f.fail[path]; ok {
		return nil, nil, nil, err
	}
	if entries, ok := f.dirs[path]; ok {
		return nil, entries, nil, nil
	}
	if content, ok := f.files[path]; ok {
		encoded := base64.StdEncoding.EncodeToString([]byte(content))
		return &github.RepositoryContent{
			Type:     github.String("file"),
			Content:  github.String(encoded),
			Encoding: github.String("base64"),
		}, nil, nil, nil
	}
	return nil, nil, nil, &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}}
}

func dirEntry(name string) *github.RepositoryContent {
	return &github.RepositoryContent{
		Type: github.String("file"),
		Name: github.String(name),
		Path: github.String("notes/" + name),
	}
}

func testSource(api contentsAPI) *GitHubSource {
	return &GitHubSource{owner: "octo", repo: "vault", dir: "notes", branch: "main", api: api}
}

func TestListNotes(t *testing.T) {
	api := &fakeRepoAPI{
		dirs: map[string][]*github.RepositoryContent{
			"notes": {
				dirEntry("a.md"),
				dirEntry("b.md"),
				dirEntry("image.png"),
				{Type: github.String("dir"), Name: github.String("sub.md"), Path: github.String("notes/sub.md")},
			},
		},
		files: map[string]string{
			"notes/a.md": "---\ntitle: A\nisPublic: true\n---\nBody A",
			"notes/b.md": "---\ntitle: B\n---\nBody B",
		},
	}
	src := testSource(api)

	got := src.ListNotes(context.Background())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	bySlug := map[string]NoteMetadata{}
	for _, meta := range got {
		bySlug[meta.Slug] = meta
	}
	if bySlug["a"].Title != "A" || !bySlug["a"].IsPublic {
		t.Fatalf("a = %+v", bySlug["a"])
	}
	if bySlug["b"].Title != "B" || bySlug["b"].IsPublic {
		t.Fatalf("b = %+v", bySlug["b"])
	}

	public := PublicOnly(got)
	if len(public) != 1 || public[0].Title != "A" {
		t.Fatalf("public = %+v", public)
	}
}

func TestListNotesSkipsFailedFetches(t *testing.T) {
	api := &fakeRepoAPI{
		dirs: map[string][]*github.RepositoryContent{
			"notes": {dirEntry("a.md"), dirEntry("b.md"), dirEntry("c.md")},
		},
		files: map[string]string{
			"notes/a.md": "---\ntitle: A\n---\n",
			"notes/c.md": "---\ntitle: C\n---\n",
		},
		fail: map[string]error{
			"notes/b.md": fmt.Errorf("boom"),
		},
	}
	src := testSource(api)

	got := src.ListNotes(context.Background())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, meta := range got {
		if meta.Slug == "b" {
			t.Fatalf("failed file should be omitted")
		}
	}
}

func TestListNotesDirectoryErrors(t *testing.T) {
	src := testSource(&fakeRepoAPI{fail: map[string]error{"notes": fmt.Errorf("boom")}})
	if got := src.ListNotes(context.Background()); len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}

	// Path resolves to a file, not a directory.
	src = testSource(&fakeRepoAPI{files: map[string]string{"notes": "not a dir"}})
	if got := src.ListNotes(context.Background()); len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestFetchNote(t *testing.T) {
	api := &fakeRepoAPI{
		files: map[string]string{
			"notes/b.md": "---\ntitle: B\n---\nText with ![[diagram.png]] embed",
		},
	}
	src := testSource(api)

	note, ok := src.FetchNote(context.Background(), "b")
	if !ok {
		t.Fatalf("expected ok")
	}
	if note.Metadata.Title != "B" || note.Metadata.Slug != "b" {
		t.Fatalf("metadata = %+v", note.Metadata)
	}
	if note.Metadata.IsPublic {
		t.Fatalf("isPublic must default to false")
	}
	if want := "Text with ![diagram.png](files/diagram.png) embed"; note.Content != want {
		t.Fatalf("content = %q, want %q", note.Content, want)
	}
}

func TestFetchNoteNotFound(t *testing.T) {
	src := testSource(&fakeRepoAPI{})
	if _, ok := src.FetchNote(context.Background(), "missing"); ok {
		t.Fatalf("expected not found")
	}
}

func TestNoteExists(t *testing.T) {
	api := &fakeRepoAPI{files: map[string]string{"notes/a.md": "Body"}}
	src := testSource(api)
	if !src.NoteExists(context.Background(), "a") {
		t.Fatalf("expected a to exist")
	}
	if src.NoteExists(context.Background(), "missing") {
		t.Fatalf("expected missing to not exist")
	}
}

func TestNoteExistsTreatsErrorsAsAbsent(t *testing.T) {
	api := &fakeRepoAPI{fail: map[string]error{"notes/a.md": fmt.Errorf("network down")}}
	src := testSource(api)
	if src.NoteExists(context.Background(), "a") {
		t.Fatalf("transient errors must report as absent")
	}
}

func TestResolveAssetURL(t *testing.T) {
	src := testSource(nil)
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://example.com/a.png", want: "https://example.com/a.png"},
		{in: "files/diagram.png", want: "https://raw.githubusercontent.com/octo/vault/main/obsidianvault/files/diagram.png"},
		{in: "/files/diagram.png", want: "https://raw.githubusercontent.com/octo/vault/main/obsidianvault/files/diagram.png"},
		{in: "obsidianvault/assets/x.png", want: "https://raw.githubusercontent.com/octo/vault/main/obsidianvault/assets/x.png"},
		{in: "files/a b.png", want: "https://raw.githubusercontent.com/octo/vault/main/obsidianvault/files/a%20b.png"},
	}
	for _, tt := range tests {
		if got := src.ResolveAssetURL(tt.in); got != tt.want {
			t.Fatalf("ResolveAssetURL(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveAssetURLIdempotent(t *testing.T) {
	src := testSource(nil)
	once := src.ResolveAssetURL("files/diagram.png")
	if got := src.ResolveAssetURL(once); got != once {
		t.Fatalf("second pass changed output: %q -> %q", once, got)
	}
}
