package gitlog

import (
	"context"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitSource reads history with go-git, for environments without a git
// binary. It produces the same Commit shape as CLISource: author date at
// day precision and the subject line only.
type GoGitSource struct {
	RepoPath string
}

func (s *GoGitSource) Commits(ctx context.Context) ([]Commit, error) {
	repo, err := git.PlainOpen(s.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", s.RepoPath, err)
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("read log for %s: %w", s.RepoPath, err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		subject, _, _ := strings.Cut(c.Message, "\n")
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Date:    c.Author.When.Format("2006-01-02"),
			Message: strings.TrimSpace(subject),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate log for %s: %w", s.RepoPath, err)
	}

	return commits, nil
}
