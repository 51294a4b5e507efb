package gitlog

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
)

// Commit is a single entry from a repository's log. Date carries day
// precision only (YYYY-MM-DD), matching git's --date=short output.
type Commit struct {
	Hash    string
	Date    string
	Message string
}

// Source produces the flat chronological commit log for one repository.
// Implementations return commits in the order the underlying tool emits
// them (newest first).
type Source interface {
	Commits(ctx context.Context) ([]Commit, error)
}

// NewSource returns a log source for the repository at repoPath. The git
// binary is preferred; when it is not on PATH the go-git reader is used
// instead.
func NewSource(repoPath string) Source {
	if _, err := exec.LookPath("git"); err == nil {
		return &CLISource{RepoPath: repoPath}
	}
	return &GoGitSource{RepoPath: repoPath}
}

// ParseLog parses pipe-delimited one-line-per-commit log output. Each line
// is split into hash, date and message; the message keeps any further pipe
// characters. Lines that do not yield all three fields are silently dropped.
func ParseLog(r io.Reader) []Commit {
	var commits []Commit
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Date:    parts[1],
			Message: parts[2],
		})
	}
	return commits
}
