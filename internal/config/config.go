package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	APIKey       string
	GitHubToken  string
	ReportsDir   string
	RepoListFile string
	Verbose      bool
	Quiet        bool
	Gemini       struct {
		BaseURL string
		Model   string
		Enabled bool
	}
}

// FromEnvAndFlags creates a Config from environment variables and CLI flags.
// A .env file in the working directory is loaded first; the credential may
// still be supplied interactively, so a missing key is not an error here.
func FromEnvAndFlags(verbose, quiet, noSummary bool) *Config {
	_ = godotenv.Load() // Silently ignore if .env file doesn't exist

	config := &Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		ReportsDir:   envOr("REPORTS_DIR", "reports"),
		RepoListFile: envOr("REPO_LIST_FILE", "repos.txt"),
		Verbose:      verbose && !quiet, // verbose is disabled if quiet is set
		Quiet:        quiet,
	}

	config.Gemini.BaseURL = envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	config.Gemini.Model = envOr("GEMINI_MODEL", "gemini-2.0-flash")

	// Summarization is on unless disabled by flag or environment
	config.Gemini.Enabled = !noSummary && os.Getenv("DISABLE_SUMMARY") == ""

	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
