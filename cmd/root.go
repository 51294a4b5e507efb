package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commit-digest-cli",
	Short: "Summarize git commit history into daily work reports",
	Long: `commit-digest-cli reads a repository's commit history, groups commits by
calendar date, summarizes each date's messages with the Gemini API, and
writes a markdown work report per date range. The concise list of extracted
task points is printed to the console; the markdown file is the durable
artifact.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior - show help
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
