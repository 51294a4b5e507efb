package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/Attamusc/commit-digest-cli/internal/ai"
	"github.com/Attamusc/commit-digest-cli/internal/config"
)

// initSummarizer creates the appropriate summarizer based on configuration
func initSummarizer(cfg *config.Config, logger *slog.Logger) ai.Summarizer {
	if cfg.Gemini.Enabled {
		logger.Debug("Gemini summarization enabled", "model", cfg.Gemini.Model)
		return ai.NewGeminiClient(cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.APIKey, logger)
	}
	logger.Debug("Summarization disabled, reports carry raw messages")
	return ai.NewNoopSummarizer()
}

// setupLogger creates a logger configured for progress output
func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.Quiet {
		// Discard all log output when quiet
		return slog.New(slog.NewTextHandler(os.NewFile(0, os.DevNull), &slog.HandlerOptions{
			Level: slog.LevelError + 1, // Higher than any log level to discard all
		}))
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Use stderr for progress so stdout stays clean for the task points
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time stamps for cleaner progress output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// printPoints writes the flattened task point list to stdout, one per line
func printPoints(points []string) {
	dash := color.New(color.FgGreen)
	for _, p := range points {
		dash.Print("- ")
		fmt.Println(p)
	}
}
