package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Attamusc/commit-digest-cli/internal/ai"
	"github.com/Attamusc/commit-digest-cli/internal/digest"
)

// Writer assembles one markdown work summary per run and writes it under
// the reports root. Regenerating with the same inputs overwrites the file.
type Writer struct {
	ReportsDir string
	Summarizer ai.Summarizer
	Logger     *slog.Logger
}

// Result carries the written file path and the task points accumulated
// across all date groups, in ascending date order.
type Result struct {
	Path   string
	Points []string
}

// Write summarizes each date group, renders the document and writes it to
// <reports-root>/<repo-name>/<label>.md. A failed summary degrades to a
// placeholder embedded in the report; it never aborts the run.
func (w *Writer) Write(ctx context.Context, repoPath, label string, groups map[string][]string) (Result, error) {
	logger := w.logger()
	repoName := RepoName(repoPath)

	dir := filepath.Join(w.ReportsDir, repoName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create report folder: %w", err)
	}
	path := filepath.Join(dir, label+".md")

	var doc strings.Builder
	doc.WriteString(fmt.Sprintf("# Work Summary for %s (%s)\n\n", repoName, label))

	var points []string
	for _, date := range digest.SortedDates(groups) {
		messages := groups[date]

		logger.Debug("Summarizing date group", "date", date, "messages", len(messages))
		summary, err := w.Summarizer.Summarize(ctx, date, messages)
		if err != nil {
			logger.Warn("Summarization failed, embedding placeholder", "date", date, "error", err)
			summary = fmt.Sprintf("[Gemini API error: %v]", err)
		}

		doc.WriteString(fmt.Sprintf("## Date: %s\n", date))
		doc.WriteString(fmt.Sprintf("**Summary:** %s\n\n", summary))
		doc.WriteString("**Messages:**\n")
		for _, msg := range messages {
			doc.WriteString(fmt.Sprintf("- %s\n", msg))
		}
		doc.WriteString("\n")

		points = append(points, ExtractTaskPoints(summary)...)
	}

	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write report file: %w", err)
	}

	logger.Debug("Report written", "path", path, "dates", len(groups), "points", len(points))
	return Result{Path: path, Points: points}, nil
}

// RepoName derives the folder name for a repository's reports from the
// base name of its path. Works for local paths and owner/name refs alike.
func RepoName(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return filepath.Base(repoPath)
	}
	return filepath.Base(abs)
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
