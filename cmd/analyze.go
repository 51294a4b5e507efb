package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Attamusc/commit-digest-cli/internal/config"
	"github.com/Attamusc/commit-digest-cli/internal/digest"
	"github.com/Attamusc/commit-digest-cli/internal/gitlog"
	"github.com/Attamusc/commit-digest-cli/internal/prompt"
	"github.com/Attamusc/commit-digest-cli/internal/remote"
	"github.com/Attamusc/commit-digest-cli/internal/report"
	"github.com/Attamusc/commit-digest-cli/internal/repolist"
)

var (
	repoPath   string
	remoteRepo string
	modeName   string
	dateValue  string
	startValue string
	endValue   string
	verbose    bool
	quiet      bool
	noSummary  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a repository's commit history into a daily work report",
	Long: `Analyze reads the commit log of a local repository (or a GitHub-hosted one
with --remote), groups commits by calendar date within the selected window,
summarizes each date's messages with the Gemini API, and writes a markdown
report under the reports directory.

With no flags the command is fully interactive: it offers the remembered
repository paths, asks for the analysis window, and falls back to prompting
for the API credential when neither .env nor the environment supplies one.

Examples:
  # Interactive run
  commit-digest-cli analyze

  # Yesterday's work in a known repository
  commit-digest-cli analyze --repo ~/src/widget --mode yesterday

  # A specific range in a GitHub-hosted repository
  commit-digest-cli analyze --remote octocat/hello-world --start 2024-01-01 --end 2024-01-07`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&repoPath, "repo", "", "Path to a local repository (default: interactive selection)")
	analyzeCmd.Flags().StringVar(&remoteRepo, "remote", "", "GitHub repository as owner/name instead of a local path")
	analyzeCmd.Flags().StringVar(&modeName, "mode", "", "Analysis window: all, date, range, today or yesterday")
	analyzeCmd.Flags().StringVar(&dateValue, "date", "", "Date for --mode date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&startValue, "start", "", "Start date for --mode range (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&endValue, "end", "", "End date for --mode range (YYYY-MM-DD)")
	analyzeCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose progress output")
	analyzeCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress all progress output")
	analyzeCmd.Flags().BoolVar(&noSummary, "no-summary", false, "Skip remote summarization, reports carry raw messages")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.FromEnvAndFlags(verbose, quiet, noSummary)
	logger := setupLogger(cfg)
	prompter := prompt.New(os.Stdin, os.Stdout)
	store := &repolist.Store{Path: cfg.RepoListFile}

	// Resolve the commit source
	var (
		source    gitlog.Source
		repoKey   string
		remoteSrc *remote.Source
	)
	switch {
	case remoteRepo != "":
		ref, err := remote.ParseRef(remoteRepo)
		if err != nil {
			return err
		}
		remoteSrc = &remote.Source{Client: remote.NewClient(cfg.GitHubToken), Ref: ref}
		source = remoteSrc
		repoKey = ref.Name
	case repoPath != "":
		info, err := os.Stat(repoPath)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("invalid directory path: %s", repoPath)
		}
		if err := store.Save(repoPath); err != nil {
			logger.Warn("Failed to remember repo path", "error", err)
		}
		source = gitlog.NewSource(repoPath)
		repoKey = repoPath
	default:
		path, err := prompter.SelectRepoPath(store)
		if err != nil {
			return err
		}
		source = gitlog.NewSource(path)
		repoKey = path
	}

	// Resolve the analysis window
	start, end, err := resolveWindow(prompter)
	if err != nil {
		return err
	}
	if remoteSrc != nil {
		remoteSrc.Since, remoteSrc.Until = start, end
	}

	// Resolve the credential: .env and environment first, prompt last
	if cfg.Gemini.Enabled && cfg.APIKey == "" {
		key, err := prompter.ReadAPIKey()
		if err != nil {
			return err
		}
		if key == "" {
			return errors.New("Gemini API key required for smart summary")
		}
		cfg.APIKey = key
	}
	summarizer := initSummarizer(cfg, logger)

	logger.Info("Fetching commit history...", "repo", repoKey)
	commits, err := source.Commits(ctx)
	if err != nil {
		logger.Error("Error fetching git log", "error", err)
	}
	if len(commits) == 0 {
		fmt.Fprintln(os.Stderr, "No commits found.")
		os.Exit(1)
	}
	logger.Info("Found commits", "count", len(commits))

	kept, skipped := digest.FilterByRange(commits, start, end)
	if skipped > 0 {
		logger.Warn("Skipped commits with unparseable dates", "count", skipped)
	}
	if len(kept) == 0 {
		fmt.Println("No commits found for the specified date or range.")
		return nil
	}

	resolvedStart, resolvedEnd := digest.ResolveBounds(kept, start, end)
	label := digest.Label(resolvedStart, resolvedEnd)
	groups := digest.GroupByDate(kept)
	logger.Info("Summarizing date groups...", "dates", len(groups), "label", label)

	writer := &report.Writer{ReportsDir: cfg.ReportsDir, Summarizer: summarizer, Logger: logger}
	result, err := writer.Write(ctx, repoKey, label, groups)
	if err != nil {
		return err
	}

	logger.Info("Report written", "path", result.Path, "points", len(result.Points))
	printPoints(result.Points)

	return nil
}

// resolveWindow turns mode/date flags, or the interactive dialogue, into
// optional inclusive range bounds. Nil bounds mean all history.
func resolveWindow(p *prompt.Prompter) (*time.Time, *time.Time, error) {
	var mode prompt.Mode
	var err error
	switch {
	case modeName != "":
		mode, err = prompt.ParseMode(modeName)
		if err != nil {
			return nil, nil, err
		}
	case dateValue != "":
		mode = prompt.ModeDate
	case startValue != "" || endValue != "":
		mode = prompt.ModeRange
	default:
		mode, err = p.SelectMode()
		if err != nil {
			return nil, nil, err
		}
	}

	switch mode {
	case prompt.ModeAllHistory:
		return nil, nil, nil
	case prompt.ModeDate:
		d, err := flagOrPromptDate(p, dateValue, "date")
		if err != nil {
			return nil, nil, err
		}
		return &d, &d, nil
	case prompt.ModeRange:
		start, err := flagOrPromptDate(p, startValue, "start date")
		if err != nil {
			return nil, nil, err
		}
		end, err := flagOrPromptDate(p, endValue, "end date")
		if err != nil {
			return nil, nil, err
		}
		return &start, &end, nil
	case prompt.ModeToday:
		d := currentDay(0)
		return &d, &d, nil
	case prompt.ModeYesterday:
		d := currentDay(-1)
		return &d, &d, nil
	}
	return nil, nil, fmt.Errorf("unhandled analysis mode %d", mode)
}

func flagOrPromptDate(p *prompt.Prompter, flagValue, label string) (time.Time, error) {
	if flagValue != "" {
		d, err := digest.ParseDate(flagValue)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format: %s", flagValue)
		}
		return d, nil
	}
	return p.ReadDate(label)
}

// currentDay returns the local calendar day offset days from today, at the
// same day precision commit dates carry.
func currentDay(offset int) time.Time {
	d, _ := digest.ParseDate(time.Now().AddDate(0, 0, offset).Format(digest.DateLayout))
	return d
}
