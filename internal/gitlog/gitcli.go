package gitlog

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// logFormat produces one line per commit: full hash, author date (short
// form, YYYY-MM-DD) and subject, pipe-delimited.
const logFormat = "%H|%ad|%s"

// CLISource reads history by shelling out to the git binary.
type CLISource struct {
	RepoPath string
}

// Commits runs git log in the repository and parses its output. A failed
// invocation (non-zero exit, repository missing) returns an error with
// git's stderr attached.
func (s *CLISource) Commits(ctx context.Context) ([]Commit, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "--pretty=format:"+logFormat, "--date=short")
	cmd.Dir = s.RepoPath

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git log failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	return ParseLog(bytes.NewReader(out)), nil
}
