package config

import "os"

// Config is read once at startup and never changes afterwards. The site runs
// in exactly one of two modes for its whole lifetime: live (token, owner and
// repo all present) or sample fallback.
type Config struct {
	GitHubToken string
	GitHubOwner string
	GitHubRepo  string
	NotesPath   string
	Branch      string
	ListenAddr  string
	SiteTitle   string

	// MissingVars lists the env vars that were absent at startup, for the
	// diagnostics report.
	MissingVars []string
}

func Load() Config {
	initEnvFile()
	cfg := Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubOwner: os.Getenv("GITHUB_OWNER"),
		GitHubRepo:  os.Getenv("GITHUB_REPO"),
		NotesPath:   envOr("NOTES_PATH", "notes"),
		Branch:      envOr("NOTES_BRANCH", "main"),
		ListenAddr:  envOr("NOTES_LISTEN_ADDR", "127.0.0.1:8080"),
		SiteTitle:   envOr("NOTES_SITE_TITLE", "ObsidianNotes"),
	}
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_OWNER", "GITHUB_REPO", "NOTES_PATH"} {
		if os.Getenv(key) == "" {
			cfg.MissingVars = append(cfg.MissingVars, key)
		}
	}
	return cfg
}

// Live reports whether the GitHub backend is fully configured. NotesPath has
// a default, so only the credentials decide the mode.
func (c Config) Live() bool {
	return c.GitHubToken != "" && c.GitHubOwner != "" && c.GitHubRepo != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
